package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/profile-normalizer/internal/transform"
	"github.com/profile-normalizer/internal/vocab"
)

func TestEveryJobHasACommand(t *testing.T) {
	registered := transform.Jobs(vocab.Default()).Names()
	assert.ElementsMatch(t, registered, jobNames)

	for _, name := range jobNames {
		assert.NotEmpty(t, jobDescriptions[name], name)
	}
}

func TestNeedsVocabulary(t *testing.T) {
	assert.False(t, needsVocabulary([]string{transform.JobAddress, transform.JobIncome}))
	assert.True(t, needsVocabulary([]string{transform.JobSiblings, transform.JobProfession}))
	assert.True(t, needsVocabulary(jobNames))
}
