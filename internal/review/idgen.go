package review

import gonanoid "github.com/matoous/go-nanoid/v2"

// IDGenerator produces local proposal ids.
type IDGenerator interface {
	NextID() string
}

// NanoIDGenerator generates 21-character nanoids.
type NanoIDGenerator struct{}

func (NanoIDGenerator) NextID() string {
	return gonanoid.Must()
}
