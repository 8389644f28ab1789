package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillList(t *testing.T) {
	wp := &WorkerProfile{Skills: "plumbing, pipe fitting,leak repair"}
	assert.Equal(t, []string{"plumbing", "pipe fitting", "leak repair"}, wp.SkillList())
}

func TestSkillListEmpty(t *testing.T) {
	assert.Nil(t, (&WorkerProfile{Skills: ""}).SkillList())
	assert.Nil(t, (&WorkerProfile{Skills: "   "}).SkillList())
}

func TestSkillListDropsBlankEntries(t *testing.T) {
	wp := &WorkerProfile{Skills: "gardening,, , lawn care"}
	assert.Equal(t, []string{"gardening", "lawn care"}, wp.SkillList())
}

func TestIsValidServiceType(t *testing.T) {
	for _, s := range GetServiceTypes() {
		assert.True(t, IsValidServiceType(s))
	}
	assert.False(t, IsValidServiceType("electrician"))
	assert.False(t, IsValidServiceType(""))
}

func TestIsValidDocumentType(t *testing.T) {
	assert.True(t, IsValidDocumentType(DocumentID))
	assert.True(t, IsValidDocumentType(DocumentCertificate))
	assert.True(t, IsValidDocumentType(DocumentPoliceClearance))
	assert.False(t, IsValidDocumentType("passport"))
}
