package models

import (
	"github.com/shopspring/decimal"
)

// Member is the projection shared by every tier of the distribution
// hierarchy. The upstream API owns these records; the console only renders
// them and addresses API calls by ID.
type Member struct {
	ID            string          `json:"id"`
	UniqueID      string          `json:"unique_id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
}

type MasterDistributor struct {
	Member
}

// Distributor is only meaningful under a selected master distributor.
type Distributor struct {
	Member
	MasterDistributorID string `json:"master_distributor_id,omitempty"`
}

// Retailer is only meaningful under a selected distributor.
type Retailer struct {
	Member
	DistributorID string `json:"distributor_id,omitempty"`
}

// Profile is the identity and KYC block every create form collects.
type Profile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
	AadharNumber string `json:"aadhar_number"`
	PanNumber    string `json:"pan_number"`
	DateOfBirth  string `json:"date_of_birth"`
	BusinessName string `json:"business_name,omitempty"`
	Address      string `json:"address"`
	Pincode      string `json:"pincode"`
}

// NewMasterDistributor is the create payload sent upstream.
type NewMasterDistributor struct {
	Profile
	AdminID string `json:"admin_id"`
}

type NewDistributor struct {
	Profile
	AdminID             string `json:"admin_id"`
	MasterDistributorID string `json:"master_distributor_id"`
}

type NewRetailer struct {
	Profile
	AdminID             string `json:"admin_id"`
	MasterDistributorID string `json:"master_distributor_id"`
	DistributorID       string `json:"distributor_id"`
}

// CascadeView is the state of the three-level selector after a load.
type CascadeView struct {
	Selection          Selection           `json:"selection"`
	State              State               `json:"state"`
	MasterDistributors []MasterDistributor `json:"master_distributors"`
	Distributors       []Distributor       `json:"distributors"`
	Retailers          []Retailer          `json:"retailers"`
}

// IDs helpers feed Sync* after a list reload.

func MasterDistributorIDs(items []MasterDistributor) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func DistributorIDs(items []Distributor) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
