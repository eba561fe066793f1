package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paynet/pkg/platform/validation"
)

func profileRequest() ProfileRequest {
	return ProfileRequest{
		Name:         "Meena Stores",
		Email:        "meena@example.com",
		Phone:        "9876501234",
		Password:     "s3cretpass",
		AadharNumber: "123412341234",
		PanNumber:    "ABCDE1234F",
		DateOfBirth:  "1990-05-17",
		Address:      "12 MG Road, Pune",
		Pincode:      "411001",
	}
}

func TestCreateMasterDistributorRequestValidate(t *testing.T) {
	t.Run("valid profile passes", func(t *testing.T) {
		req := &CreateMasterDistributorRequest{ProfileRequest: profileRequest()}
		assert.NoError(t, req.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*ProfileRequest)
		field  string
	}{
		{"blank name", func(p *ProfileRequest) { p.Name = "  " }, "name"},
		{"bad email", func(p *ProfileRequest) { p.Email = "meena" }, "email"},
		{"short phone", func(p *ProfileRequest) { p.Phone = "98765" }, "phone"},
		{"aadhaar with letters", func(p *ProfileRequest) { p.AadharNumber = "12341234123X" }, "aadhar_number"},
		{"lowercase pan", func(p *ProfileRequest) { p.PanNumber = "abcde1234f" }, "pan_number"},
		{"future birth date", func(p *ProfileRequest) { p.DateOfBirth = "2999-01-01" }, "date_of_birth"},
		{"five digit pincode", func(p *ProfileRequest) { p.Pincode = "41100" }, "pincode"},
		{"short password", func(p *ProfileRequest) { p.Password = "abc" }, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profileRequest()
			tt.mutate(&p)
			err := (&CreateMasterDistributorRequest{ProfileRequest: p}).Validate()
			require.Error(t, err)
			assert.Contains(t, validation.Fields(err), tt.field)
		})
	}
}

func TestNormalize(t *testing.T) {
	req := &CreateRetailerRequest{
		ProfileRequest:      profileRequest(),
		MasterDistributorID: " md_1 ",
		DistributorID:       " d_1",
	}
	req.PanNumber = " abcde1234f"
	req.Email = "Meena@Example.COM"

	req.Normalize()

	assert.Equal(t, "ABCDE1234F", req.PanNumber)
	assert.Equal(t, "meena@example.com", req.Email)
	assert.Equal(t, "md_1", req.MasterDistributorID)
	assert.Equal(t, "d_1", req.DistributorID)
}

func TestRetailerSelectionDropsOrphanChild(t *testing.T) {
	req := &CreateRetailerRequest{ProfileRequest: profileRequest(), DistributorID: "d_1"}
	err := req.Validate()
	require.Error(t, err)
	fields := validation.Fields(err)
	assert.Equal(t, "select master distributor", fields["master_distributor_id"])
	assert.Equal(t, "select distributor", fields["distributor_id"])
}
