package utils

import "github.com/google/uuid"

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// GenerateDeterministic returns a name-based (version 5) UUID for the given
// namespace and name. The same inputs always produce the same UUID, which
// lets independent parties agree on an identifier without coordination.
func (g *UUIDGenerator) GenerateDeterministic(namespace uuid.UUID, name string) string {
	return uuid.NewSHA1(namespace, []byte(name)).String()
}
