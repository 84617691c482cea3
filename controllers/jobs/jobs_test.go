package jobsController

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchScore_FullMatch(t *testing.T) {
	score, missing := MatchScore([]string{"Go", "SQL"}, []string{"go", "sql", "docker"})
	assert.Equal(t, 100, score)
	assert.Empty(t, missing)
}

func TestMatchScore_PartialMatch(t *testing.T) {
	score, missing := MatchScore([]string{"Go", "SQL", "Kubernetes", "Terraform"}, []string{"Go", "SQL"})
	assert.Equal(t, 50, score)
	assert.Equal(t, []string{"Kubernetes", "Terraform"}, missing)
}

func TestMatchScore_CaseInsensitive(t *testing.T) {
	score, missing := MatchScore([]string{"PostgreSQL"}, []string{"postgresql"})
	assert.Equal(t, 100, score)
	assert.Empty(t, missing)
}

func TestMatchScore_NoRequirementsMatchesEveryone(t *testing.T) {
	score, missing := MatchScore(nil, nil)
	assert.Equal(t, 100, score)
	assert.Nil(t, missing)
}

func TestMatchScore_NoUserSkills(t *testing.T) {
	score, missing := MatchScore([]string{"Go", "SQL"}, nil)
	assert.Zero(t, score)
	assert.Len(t, missing, 2)
}

func TestMatchScore_WhitespaceTrimmed(t *testing.T) {
	score, _ := MatchScore([]string{" Go "}, []string{"go"})
	assert.Equal(t, 100, score)
}
