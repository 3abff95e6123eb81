// Command smtgen generates a sample insertion witness (one key inserted into
// the empty tree) against a chosen hasher binding and dumps it as JSON, for
// feeding into a circuit test harness without having to hand-compute field
// constants. It does not generate update or delete witnesses.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/rs/zerolog"

	"github.com/0xanonymeow/zksmt"
	"github.com/0xanonymeow/zksmt/field"
	"github.com/0xanonymeow/zksmt/hash"
	"github.com/0xanonymeow/zksmt/internal/pool"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

type witness struct {
	Op       string   `json:"op"`
	Depth    int      `json:"depth"`
	Binding  string   `json:"binding"`
	Key      string   `json:"key"`
	Value    string   `json:"value"`
	OldRoot  string   `json:"oldRoot"`
	NewRoot  string   `json:"newRoot"`
	Siblings []string `json:"siblings"`
}

func main() {
	depth := flag.Int("depth", 8, "tree depth")
	binding := flag.String("binding", "poseidon", "hasher binding: poseidon, poseidon2, pedersen")
	keyArg := flag.Int64("key", 1, "key to insert")
	valueArg := flag.Int64("value", 100, "value to insert")
	flag.Parse()

	s, err := bindingSMT(*binding, *depth)
	if err != nil {
		logger.Fatal().Err(err).Str("binding", *binding).Msg("unknown hasher binding")
	}

	key := field.FromBigInt(big.NewInt(*keyArg))
	value := field.FromBigInt(big.NewInt(*valueArg))

	proof := s.EmptyProof()
	oldRoot := s.ComputeRoot(proof)
	newRoot := s.InsertAndComputeRoot(proof, key, value, oldRoot)

	logger.Info().
		Str("binding", *binding).
		Int("depth", *depth).
		Str("oldRoot", field.ToBigInt(oldRoot).String()).
		Str("newRoot", field.ToBigInt(newRoot).String()).
		Msg("generated insertion witness")

	w := witness{
		Op:       "insert",
		Depth:    *depth,
		Binding:  *binding,
		Key:      field.ToBigInt(key).String(),
		Value:    field.ToBigInt(value).String(),
		OldRoot:  field.ToBigInt(oldRoot).String(),
		NewRoot:  field.ToBigInt(newRoot).String(),
		Siblings: elementStrings(proof.Siblings),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(w); err != nil {
		logger.Fatal().Err(err).Msg("failed to encode witness")
	}
}

func bindingSMT(name string, depth int) (*smt.SMT, error) {
	switch name {
	case "poseidon":
		return hash.NewSMT(depth), nil
	case "poseidon2":
		return hash.NewPoseidon2SMT(depth), nil
	case "pedersen":
		return hash.NewPedersenSMT(depth), nil
	default:
		return nil, fmt.Errorf("unknown binding %q", name)
	}
}

func elementStrings(es []field.Element) []string {
	out := pool.GlobalStringSlicePool.Get()
	for _, e := range es {
		out = append(out, field.ToBigInt(e).String())
	}
	return out
}
