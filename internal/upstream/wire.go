package upstream

import (
	"time"

	"github.com/shopspring/decimal"

	fundmodels "paynet/internal/funds/models"
	hiermodels "paynet/internal/hierarchy/models"
	ledgermodels "paynet/internal/ledger/models"
	ticketmodels "paynet/internal/tickets/models"
	"paynet/pkg/domain"
)

// The upstream names every field after the record's tier. These wire types
// exist only to map those names onto the console models.

type masterDistributorWire struct {
	ID            string          `json:"master_distributor_id"`
	UniqueID      string          `json:"master_distributor_unique_id"`
	Name          string          `json:"master_distributor_name"`
	Email         string          `json:"master_distributor_email"`
	Phone         string          `json:"master_distributor_phone"`
	WalletBalance decimal.Decimal `json:"master_distributor_wallet_balance"`
}

func (w masterDistributorWire) member() hiermodels.Member {
	return hiermodels.Member{ID: w.ID, UniqueID: w.UniqueID, Name: w.Name, Email: w.Email, Phone: w.Phone, WalletBalance: w.WalletBalance}
}

func toMasterDistributor(w masterDistributorWire) hiermodels.MasterDistributor {
	return hiermodels.MasterDistributor{Member: w.member()}
}

type distributorWire struct {
	ID                  string          `json:"distributor_id"`
	UniqueID            string          `json:"distributor_unique_id"`
	Name                string          `json:"distributor_name"`
	Email               string          `json:"distributor_email"`
	Phone               string          `json:"distributor_phone"`
	WalletBalance       decimal.Decimal `json:"distributor_wallet_balance"`
	MasterDistributorID string          `json:"master_distributor_id"`
}

func (w distributorWire) member() hiermodels.Member {
	return hiermodels.Member{ID: w.ID, UniqueID: w.UniqueID, Name: w.Name, Email: w.Email, Phone: w.Phone, WalletBalance: w.WalletBalance}
}

func toDistributor(w distributorWire) hiermodels.Distributor {
	return hiermodels.Distributor{Member: w.member(), MasterDistributorID: w.MasterDistributorID}
}

type userWire struct {
	ID            string          `json:"user_id"`
	UniqueID      string          `json:"user_unique_id"`
	Name          string          `json:"user_name"`
	Email         string          `json:"user_email"`
	Phone         string          `json:"user_phone"`
	WalletBalance decimal.Decimal `json:"user_wallet_balance"`
	DistributorID string          `json:"distributor_id"`
}

func (w userWire) member() hiermodels.Member {
	return hiermodels.Member{ID: w.ID, UniqueID: w.UniqueID, Name: w.Name, Email: w.Email, Phone: w.Phone, WalletBalance: w.WalletBalance}
}

func toRetailer(w userWire) hiermodels.Retailer {
	return hiermodels.Retailer{Member: w.member(), DistributorID: w.DistributorID}
}

func toAccount(m hiermodels.Member, t domain.UserType) ledgermodels.Account {
	return ledgermodels.Account{
		ID:            m.ID,
		UniqueID:      m.UniqueID,
		Name:          m.Name,
		Phone:         m.Phone,
		UserType:      t,
		WalletBalance: m.WalletBalance,
	}
}

type walletTransactionWire struct {
	ID         string          `json:"wallet_transaction_id"`
	FromName   string          `json:"from_name"`
	FromType   string          `json:"from_type"`
	ToName     string          `json:"to_name"`
	ToType     string          `json:"to_type"`
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
	Status     string          `json:"transaction_status"`
	CreatedAt  time.Time       `json:"created_at"`
}

func toWalletTransaction(w walletTransactionWire) ledgermodels.Transaction {
	return ledgermodels.Transaction{
		ID:         w.ID,
		FromName:   w.FromName,
		FromType:   w.FromType,
		ToName:     w.ToName,
		ToType:     w.ToType,
		Amount:     w.Amount,
		Commission: w.Commission,
		Status:     ledgermodels.Status(w.Status),
		CreatedAt:  w.CreatedAt,
	}
}

type payoutTransactionWire struct {
	ID              string          `json:"payout_transaction_id"`
	UserName        string          `json:"user_name"`
	BeneficiaryName string          `json:"beneficiary_name"`
	Amount          decimal.Decimal `json:"amount"`
	Commission      decimal.Decimal `json:"commission"`
	Status          string          `json:"transaction_status"`
	CreatedAt       time.Time       `json:"created_at"`
}

func toPayoutTransaction(w payoutTransactionWire) ledgermodels.Transaction {
	return ledgermodels.Transaction{
		ID:         w.ID,
		FromName:   w.UserName,
		FromType:   string(domain.UserTypeRetailer),
		ToName:     w.BeneficiaryName,
		ToType:     "beneficiary",
		Amount:     w.Amount,
		Commission: w.Commission,
		Status:     ledgermodels.Status(w.Status),
		CreatedAt:  w.CreatedAt,
	}
}

type revertWire struct {
	ID        string          `json:"revert_id"`
	Phone     string          `json:"phone"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Remarks   string          `json:"remarks"`
	Status    string          `json:"revert_status"`
	CreatedAt time.Time       `json:"created_at"`
}

func toRevert(w revertWire) ledgermodels.Revert {
	return ledgermodels.Revert{
		ID:        w.ID,
		Phone:     w.Phone,
		Name:      w.Name,
		Amount:    w.Amount,
		Remarks:   w.Remarks,
		Status:    ledgermodels.Status(w.Status),
		CreatedAt: w.CreatedAt,
	}
}

type fundRequestWire struct {
	ID            string          `json:"fund_request_id"`
	RequesterID   string          `json:"requester_id"`
	RequesterName string          `json:"requester_name"`
	Amount        decimal.Decimal `json:"amount"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	IFSC          string          `json:"ifsc_code"`
	UTR           string          `json:"utr_number"`
	Remarks       string          `json:"remarks"`
	Status        string          `json:"request_status"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toFundRequest(w fundRequestWire) fundmodels.FundRequest {
	return fundmodels.FundRequest{
		ID:            w.ID,
		RequesterID:   w.RequesterID,
		RequesterName: w.RequesterName,
		Amount:        w.Amount,
		BankName:      w.BankName,
		AccountNumber: w.AccountNumber,
		IFSC:          w.IFSC,
		UTR:           w.UTR,
		Remarks:       w.Remarks,
		Status:        fundmodels.Status(w.Status),
		CreatedAt:     w.CreatedAt,
	}
}

type ticketWire struct {
	ID          string    `json:"ticket_id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	Subject     string    `json:"ticket_title"`
	Description string    `json:"ticket_description"`
	Status      string    `json:"ticket_status"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTicket(w ticketWire) ticketmodels.Ticket {
	return ticketmodels.Ticket{
		ID:          w.ID,
		UserID:      w.UserID,
		UserName:    w.UserName,
		Subject:     w.Subject,
		Description: w.Description,
		Status:      ticketmodels.Status(w.Status),
		CreatedAt:   w.CreatedAt,
	}
}

type loginWire struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
