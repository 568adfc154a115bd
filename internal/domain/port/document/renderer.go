package document

import (
	"github.com/flouscash/platform/internal/domain/entity"
)

// Renderer produces the printable contract document. Rendering is a pure
// function of the contract snapshot and the optional signature text; a
// contract is rendered the same way before and after signing.
type Renderer interface {
	Render(contract *entity.Contract, signatureData string) ([]byte, error)
}
