package plonk

import (
	"fmt"
	"io"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/sp301415/plonk-piop/circuit"
	"github.com/sp301415/plonk-piop/logger"
	"github.com/sp301415/plonk-piop/pcs"
)

// Setup generates the public parameters for proving executions of c
// with the given public inputs. The SRS randomness is sampled from rng.
func Setup(c *circuit.Circuit, publicInputs []fr.Element, params Parameters, rng io.Reader) (PublicParameters, error) {
	if len(publicInputs) != c.InputConfig().NPublic() {
		return PublicParameters{}, fmt.Errorf("expected %d public inputs, got %d", c.InputConfig().NPublic(), len(publicInputs))
	}

	enc := NewEncoder(c)
	if required := 3 * (enc.DomainSize() - 1); required > params.MaxDegree() {
		return PublicParameters{}, fmt.Errorf("circuit requires degree %d, exceeding maximum degree %d", required, params.MaxDegree())
	}

	now := time.Now()
	srs, err := pcs.Setup(params.MaxDegree(), rng)
	if err != nil {
		return PublicParameters{}, err
	}
	log := logger.Logger()
	log.Debug().Dur("took", time.Since(now)).Msg("srs generated")

	return PublicParameters{
		SelectorPoly:    enc.SelectorPolynomial(c),
		PublicInputPoly: enc.PublicInputPolynomial(c, publicInputs),
		PermutationPoly: enc.PermutationPolynomial(c),
		SRS:             srs,
	}, nil
}
