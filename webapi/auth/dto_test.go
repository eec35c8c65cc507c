package auth

import (
	"testing"

	"github.com/amirasaad/invochain/pkg/domain/user"
	"github.com/stretchr/testify/assert"
)

func TestLoginInput_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input LoginInput
		want  string
	}{
		{"identity wins", LoginInput{Identity: " bob ", Email: "b@x.com", Username: "bobby"}, "bob"},
		{"email alias", LoginInput{Email: " b@x.com", Username: "bobby"}, "b@x.com"},
		{"username alias", LoginInput{Username: "bobby "}, "bobby"},
		{"nothing", LoginInput{}, ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := tt.input
			in.Normalize()
			assert.Equal(t, tt.want, in.Identity)
		})
	}
}

func TestSignupInput_ToDTO(t *testing.T) {
	t.Parallel()
	name := "Bob"
	in := SignupInput{
		Username: "  bob ",
		Email:    " b@x.com ",
		Password: " secret ",
		FullName: &name,
		UserType: "sme",
	}
	in.Normalize()
	out := in.toDTO()

	assert.Equal(t, "bob", out.Username)
	assert.Equal(t, "b@x.com", out.Email)
	assert.Equal(t, " secret ", out.Password, "passwords are taken verbatim")
	assert.Equal(t, user.RoleSME, out.Role)
	assert.Equal(t, &name, out.FullName)
}
