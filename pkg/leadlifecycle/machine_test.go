package leadlifecycle

import (
	"testing"

	"github.com/salesflowhq/salesflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusNew, StatusQualified},
		{StatusNew, StatusUnqualified},
		{StatusNew, StatusContacted},
		{StatusNew, StatusClosed},
		{StatusQualified, StatusContacted},
		{StatusQualified, StatusUnqualified},
		{StatusQualified, StatusClosed},
		{StatusContacted, StatusResponded},
		{StatusContacted, StatusUnqualified},
		{StatusContacted, StatusClosed},
		{StatusResponded, StatusConverted},
		{StatusResponded, StatusClosed},
		{StatusUnqualified, StatusClosed},
	}
	for _, tt := range allowed {
		assert.True(t, CanTransition(tt.from, tt.to), "%s -> %s should be allowed", tt.from, tt.to)
	}

	rejected := []struct{ from, to Status }{
		{StatusNew, StatusResponded},
		{StatusNew, StatusConverted},
		{StatusQualified, StatusResponded},
		{StatusContacted, StatusQualified},
		{StatusResponded, StatusNew},
		{StatusConverted, StatusQualified},
		{StatusConverted, StatusClosed},
		{StatusClosed, StatusNew},
		{StatusClosed, StatusClosed},
		{StatusUnqualified, StatusQualified},
	}
	for _, tt := range rejected {
		assert.False(t, CanTransition(tt.from, tt.to), "%s -> %s should be rejected", tt.from, tt.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusConverted))
	assert.True(t, IsTerminal(StatusClosed))

	for _, s := range []Status{StatusNew, StatusQualified, StatusContacted, StatusResponded, StatusUnqualified} {
		assert.False(t, IsTerminal(s), "%s should not be terminal", s)
	}
}

func TestCheckTransition_ErrorCarriesStates(t *testing.T) {
	err := CheckTransition(StatusConverted, StatusQualified)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidTransition(err))

	de := &domain.DomainError{}
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "converted", de.Current)
	assert.Equal(t, "qualified", de.Requested)
}

func TestCheckTransition_UnknownTarget(t *testing.T) {
	err := CheckTransition(StatusNew, Status("negotiating"))
	require.Error(t, err)
	assert.True(t, domain.IsInvalidTransition(err))
}
