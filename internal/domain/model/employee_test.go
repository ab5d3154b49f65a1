package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeFullName(t *testing.T) {
	assert.Equal(t, "Ada King Lovelace", Employee{FirstName: "Ada", MiddleName: "King", LastName: "Lovelace"}.FullName())
	assert.Equal(t, "Ada Lovelace", Employee{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	assert.Equal(t, "", Employee{}.FullName())
}

func TestEmployeeIdentifier(t *testing.T) {
	assert.Equal(t, "a1", Employee{ID: "a1", AltID: "b2"}.Identifier())
	assert.Equal(t, "b2", Employee{AltID: "b2"}.Identifier())
	assert.Equal(t, "", Employee{}.Identifier())
}
