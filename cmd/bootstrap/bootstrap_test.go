package bootstrap

import (
	"testing"

	"go-clinic-management/config"
	"go-clinic-management/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicies(t *testing.T) {
	policies, err := ParsePolicies(config.PolicyConfig{
		PatientDelete:    "cascade",
		DoctorDelete:     "nullify",
		StatusTransition: "forward_only",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DeletePolicyCascade, policies.PatientDelete)
	assert.Equal(t, entity.DeletePolicyNullify, policies.DoctorDelete)
	assert.Equal(t, entity.TransitionForwardOnly, policies.StatusTransition)
}

func TestParsePolicies_Rejects(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.PolicyConfig
	}{
		{"patient nullify", config.PolicyConfig{PatientDelete: "nullify", DoctorDelete: "nullify", StatusTransition: "permissive"}},
		{"unknown doctor policy", config.PolicyConfig{PatientDelete: "cascade", DoctorDelete: "archive", StatusTransition: "permissive"}},
		{"unknown transition policy", config.PolicyConfig{PatientDelete: "cascade", DoctorDelete: "restrict", StatusTransition: "strict"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePolicies(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("chatty").GetLevel())
}
