package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestsForJobRole(t *testing.T) {
	assert.Equal(t, []TestType{TestTally, TestExcel}, TestsForJobRole("ACCOUNTS"))
	assert.Equal(t, []TestType{TestCoding, TestAptitude}, TestsForJobRole("IT"))
	assert.Equal(t, []TestType{TestGeneral}, TestsForJobRole("GARDENING"))
	assert.Equal(t, []TestType{TestGeneral}, TestsForJobRole(""))
}

func TestRequiredDocuments(t *testing.T) {
	docs := RequiredDocuments()
	assert.Len(t, docs, 6)
	assert.NotContains(t, docs, DocumentExperience)
}

func TestPagination_Pages(t *testing.T) {
	assert.Equal(t, 1, Pagination{}.Pages())
	assert.Equal(t, 1, Pagination{Page: 1, PageSize: 10, Total: 10}.Pages())
	assert.Equal(t, 2, Pagination{Page: 1, PageSize: 10, Total: 11}.Pages())
	assert.Equal(t, 5, Pagination{Page: 1, PageSize: 25, Total: 101}.Pages())
}
