package memory

import (
	"testing"

	"github.com/aanand-mishra/roster-api/internal/storage"
	"github.com/aanand-mishra/roster-api/internal/storage/storagetest"
)

func TestStudentRepository(t *testing.T) {
	storagetest.RunStudentRepository(t, func(t *testing.T) storage.StudentRepository {
		return New()
	})
}

func TestTeamRepository(t *testing.T) {
	storagetest.RunTeamRepository(t, func(t *testing.T) storage.TeamRepository {
		return New()
	})
}
