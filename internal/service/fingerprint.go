package service

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"github.com/guttosm/cargo-pack-service/internal/packing"
	"github.com/guttosm/cargo-pack-service/internal/service/cache"
)

// Fingerprint hashes everything that influences a packing result: the item
// lines in order, the container and the algorithm parameters. Progress
// callbacks and the instance cap do not change the result and are ignored.
func Fingerprint(items []model.Item, container model.Container, opts packing.Options) cache.Key {
	d := xxhash.New()
	var buf [8]byte

	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
	writeInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}
	writeString := func(s string) {
		writeInt(int64(len(s)))
		_, _ = d.WriteString(s)
	}

	writeString(opts.Algorithm)
	if opts.AllowRotation {
		writeInt(1)
	} else {
		writeInt(0)
	}
	writeInt(int64(opts.GridStep))
	writeInt(int64(opts.Generations))
	writeInt(int64(opts.PopulationSize))
	writeFloat(opts.MutationRate)
	writeInt(int64(opts.EliteCount))
	writeInt(int64(opts.TournamentSize))
	writeInt(opts.Seed)

	writeFloat(container.Length)
	writeFloat(container.Width)
	writeFloat(container.Height)
	writeFloat(container.MaxWeight)

	writeInt(int64(len(items)))
	for _, item := range items {
		writeString(item.ID)
		writeFloat(item.Length)
		writeFloat(item.Width)
		writeFloat(item.Height)
		writeFloat(item.Weight)
		writeInt(int64(item.Quantity))
	}

	return cache.Key(d.Sum64())
}

// Cacheable reports whether opts always produce the same result for the same
// input. Genetic runs are only reproducible with an explicit seed.
func Cacheable(opts packing.Options) bool {
	switch opts.Algorithm {
	case packing.AlgorithmFFD, packing.AlgorithmExtremePoints:
		return true
	case packing.AlgorithmGenetic, packing.AlgorithmAuto:
		return opts.Seed != 0
	default:
		return false
	}
}

func cloneResult(r model.PackResult) model.PackResult {
	if r.Placements != nil {
		placements := make([]model.Placement, len(r.Placements))
		copy(placements, r.Placements)
		r.Placements = placements
	}
	return r
}
