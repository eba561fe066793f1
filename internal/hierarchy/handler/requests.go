package handler

import (
	"strings"

	"paynet/internal/hierarchy/models"
	"paynet/pkg/platform/validation"
)

// ProfileRequest is the identity and KYC block shared by every create form.
type ProfileRequest struct {
	Name         string `json:"name" validate:"notblank,min=2,max=100"`
	Email        string `json:"email" validate:"required,email,max=254"`
	Phone        string `json:"phone" validate:"required,phone10"`
	Password     string `json:"password" validate:"required,min=8,max=64"`
	AadharNumber string `json:"aadhar_number" validate:"required,aadhaar"`
	PanNumber    string `json:"pan_number" validate:"required,pan"`
	DateOfBirth  string `json:"date_of_birth" validate:"required,notfuture"`
	BusinessName string `json:"business_name" validate:"max=150"`
	Address      string `json:"address" validate:"notblank,max=250"`
	Pincode      string `json:"pincode" validate:"required,pincode"`
}

func (r *ProfileRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.AadharNumber = strings.ReplaceAll(strings.TrimSpace(r.AadharNumber), " ", "")
	r.PanNumber = strings.ToUpper(strings.TrimSpace(r.PanNumber))
	r.DateOfBirth = strings.TrimSpace(r.DateOfBirth)
	r.BusinessName = strings.TrimSpace(r.BusinessName)
	r.Address = strings.TrimSpace(r.Address)
	r.Pincode = strings.TrimSpace(r.Pincode)
}

func (r *ProfileRequest) Profile() models.Profile {
	return models.Profile{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Password:     r.Password,
		AadharNumber: r.AadharNumber,
		PanNumber:    r.PanNumber,
		DateOfBirth:  r.DateOfBirth,
		BusinessName: r.BusinessName,
		Address:      r.Address,
		Pincode:      r.Pincode,
	}
}

type CreateMasterDistributorRequest struct {
	ProfileRequest
}

func (r *CreateMasterDistributorRequest) Validate() error {
	return validation.Validate(r)
}

type CreateDistributorRequest struct {
	ProfileRequest
	MasterDistributorID string `json:"master_distributor_id"`
}

func (r *CreateDistributorRequest) Normalize() {
	r.ProfileRequest.Normalize()
	r.MasterDistributorID = strings.TrimSpace(r.MasterDistributorID)
}

func (r *CreateDistributorRequest) Selection() models.Selection {
	return models.NewSelection(r.MasterDistributorID, "")
}

// Validate reports parent gating and field errors together so the form can
// flag every problem at once.
func (r *CreateDistributorRequest) Validate() error {
	errs := validation.FieldErrors{}
	errs.Merge(r.Selection().RequireParent())
	errs.Merge(validation.Struct(r))
	return errs.Err()
}

type CreateRetailerRequest struct {
	ProfileRequest
	MasterDistributorID string `json:"master_distributor_id"`
	DistributorID       string `json:"distributor_id"`
}

func (r *CreateRetailerRequest) Normalize() {
	r.ProfileRequest.Normalize()
	r.MasterDistributorID = strings.TrimSpace(r.MasterDistributorID)
	r.DistributorID = strings.TrimSpace(r.DistributorID)
}

func (r *CreateRetailerRequest) Selection() models.Selection {
	return models.NewSelection(r.MasterDistributorID, r.DistributorID)
}

func (r *CreateRetailerRequest) Validate() error {
	errs := validation.FieldErrors{}
	errs.Merge(r.Selection().RequireChild())
	errs.Merge(validation.Struct(r))
	return errs.Err()
}
