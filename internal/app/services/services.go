package services

import (
	"github.com/bureauchain/diplomachain/internal/app/repositories"
	"github.com/bureauchain/diplomachain/internal/ledger"
)

// Services bundles the application services for the bootstrap.
type Services struct {
	Resolver *InstitutionResolver
	Diplomas *DiplomaService
}

// NewServices wires the services onto the reference-store repositories and
// the ledger client.
func NewServices(repos *repositories.Repositories, client *ledger.DiplomaClient) *Services {
	resolver := NewInstitutionResolver(repos.Institutions)

	return &Services{
		Resolver: resolver,
		Diplomas: NewDiplomaService(repos.Students, repos.Courses, repos.ThesisDefences, resolver, client),
	}
}
