package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultPort      = "8090"
	defaultLatencyMs = "80"
	defaultEmail     = "admin@paynet.in"
	defaultPassword  = "password123"
)

var (
	latencyMs = getEnvInt("LATENCY_MS", defaultLatencyMs)
	email     = getEnv("ADMIN_EMAIL", defaultEmail)
	password  = getEnv("ADMIN_PASSWORD", defaultPassword)
	// tokenTTL is short so expiry handling can be exercised by hand.
	tokenTTL = time.Duration(getEnvInt("TOKEN_TTL_MINUTES", "60")) * time.Minute
)

const adminID = "adm_demo"

// Magic phone numbers let console testers steer the fake.
const (
	phoneUnknown  = "9000000000" // lookup answers success with null data
	phoneRejected = "9111111111" // create and revert answer failed with a message
)

type envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type member struct {
	ID, UniqueID, Name, Email, Phone, ParentID string
	Balance                                    float64
}

type store struct {
	mu           sync.Mutex
	mds          []member
	distributors []member
	users        []member
	wallet       []map[string]any
	payouts      map[string][]map[string]any
	funds        []map[string]any
	reverts      []map[string]any
	tickets      []map[string]any
	seq          int
}

func newStore() *store {
	now := time.Now().UTC()
	at := func(d time.Duration) string { return now.Add(-d).Format(time.RFC3339) }
	s := &store{
		mds: []member{
			{ID: "md_1", UniqueID: "PNMD0001", Name: "Kiran Traders", Email: "kiran@example.in", Phone: "9876500001", ParentID: adminID, Balance: 125000},
			{ID: "md_2", UniqueID: "PNMD0002", Name: "Sahyadri Fintech", Email: "ops@sahyadri.in", Phone: "9876500002", ParentID: adminID, Balance: 48250.75},
		},
		distributors: []member{
			{ID: "d_1", UniqueID: "PNDT0001", Name: "Meena Agencies", Phone: "9876500011", ParentID: "md_1", Balance: 15000},
			{ID: "d_2", UniqueID: "PNDT0002", Name: "Ganesh Mobile", Phone: "9876500012", ParentID: "md_1", Balance: 3200.5},
		},
		users: []member{
			{ID: "u_1", UniqueID: "PNRT0001", Name: "Ravi Store", Phone: "9876500021", ParentID: "d_1", Balance: 820},
		},
		payouts: map[string][]map[string]any{
			"u_1": {
				{"payout_transaction_id": "ptx_1", "user_name": "Ravi Store", "beneficiary_name": "Anil Kumar", "amount": "2500", "commission": "12.50", "transaction_status": "SUCCESS", "created_at": at(2 * time.Hour)},
				{"payout_transaction_id": "ptx_2", "user_name": "Ravi Store", "beneficiary_name": "Sunita Devi", "amount": "900", "commission": "4.50", "transaction_status": "PENDING", "created_at": at(time.Hour)},
				{"payout_transaction_id": "ptx_3", "user_name": "Ravi Store", "beneficiary_name": "Anil Kumar", "amount": "400", "commission": "2", "transaction_status": "REFUND", "created_at": at(26 * time.Hour)},
			},
		},
		funds: []map[string]any{
			{"fund_request_id": "fr_1", "requester_id": "md_1", "requester_name": "Kiran Traders", "amount": "50000", "bank_name": "HDFC Bank", "account_number": "50100012345678", "ifsc_code": "HDFC0001234", "utr_number": "HDFCN52026031500", "request_status": "PENDING", "created_at": at(3 * time.Hour)},
			{"fund_request_id": "fr_2", "requester_id": "md_2", "requester_name": "Sahyadri Fintech", "amount": "10000", "bank_name": "SBI", "account_number": "30012345678", "ifsc_code": "SBIN0000456", "utr_number": "SBIN52026031400", "request_status": "APPROVED", "created_at": at(30 * time.Hour)},
		},
		tickets: []map[string]any{
			{"ticket_id": "t_1", "user_id": "u_1", "user_name": "Ravi Store", "ticket_title": "Payout stuck", "ticket_description": "ptx_2 pending since morning", "ticket_status": "OPEN", "created_at": at(50 * time.Minute)},
			{"ticket_id": "t_2", "user_id": "d_2", "user_name": "Ganesh Mobile", "ticket_title": "KYC update", "ticket_description": "New PAN uploaded", "ticket_status": "RESOLVED", "created_at": at(72 * time.Hour)},
		},
	}
	for i := range 23 {
		s.wallet = append(s.wallet, map[string]any{
			"wallet_transaction_id": fmt.Sprintf("wtx_%02d", i+1),
			"from_name":             "Paynet Admin", "from_type": "ADMIN",
			"to_name": s.mds[i%2].Name, "to_type": "MASTER_DISTRIBUTOR",
			"amount":             strconv.Itoa(1000 * (i + 1)),
			"commission":         fmt.Sprintf("%.2f", float64(i+1)*7.3),
			"transaction_status": []string{"SUCCESS", "PENDING", "FAILED"}[i%3],
			"created_at":         at(time.Duration(i) * 5 * time.Hour),
		})
	}
	return s
}

func (s *store) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s_%d", prefix, 100+s.seq)
}

func main() {
	port := getEnv("PORT", defaultPort)
	st := newStore()

	r := chi.NewRouter()
	r.Use(latency)
	r.Head("/", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/health", handleHealth)
	r.Post("/admin/login", handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(requireBearer)
		// Lists deliberately vary between bare arrays and wrapped objects,
		// which is how the real API behaves.
		r.Get("/admin/get/md/{adminID}", st.listMembers(func() []member { return st.mds }, "master_distributor", "master_distributors", false))
		r.Get("/admin/get/distributors/{parentID}", st.listMembers(func() []member { return st.distributors }, "distributor", "distributors", true))
		r.Get("/admin/get/users/{parentID}", st.listMembers(func() []member { return st.users }, "user", "users", true))
		r.Post("/admin/create/md", st.create("md"))
		r.Post("/admin/create/distributor", st.create("distributor"))
		r.Post("/admin/create/user", st.create("user"))
		r.Get("/admin/get/{kind}/phone/{phone}", st.lookup)

		r.Get("/admin/get/wallet/transactions/{adminID}", st.list(func(*http.Request) any { return map[string]any{"transactions": st.wallet} }))
		r.Get("/user/payout/get/transactions/{userID}", st.list(func(r *http.Request) any { return st.payouts[chi.URLParam(r, "userID")] }))
		r.Get("/user/payout/refund/{txID}", st.refund)
		r.Post("/admin/wallet/topup", st.ack("wallet top-up recorded"))

		r.Get("/admin/get/fund/requests/{adminID}", st.list(func(*http.Request) any { return map[string]any{"fund_requests": st.funds} }))
		r.Post("/admin/accept/fund/request", st.acceptFund)
		r.Get("/admin/reject/fund/request/{id}", st.rejectFund)

		r.Post("/admin/revert/amount", st.revert)
		r.Get("/admin/revert/get/history/{phone}", st.list(func(r *http.Request) any {
			phone := chi.URLParam(r, "phone")
			out := []map[string]any{}
			for _, rv := range st.reverts {
				if rv["phone"] == phone {
					out = append(out, rv)
				}
			}
			return map[string]any{"history": out}
		}))
		r.Get("/admin/get/tickets/{adminID}", st.list(func(*http.Request) any { return st.tickets }))
	})

	log.Printf("🏦 Mock paynet API starting on port %s", port)
	log.Printf("🔑 Login: %s / %s", email, password)
	log.Printf("⏱️  Simulated latency: %dms", latencyMs)

	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

func latency(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Duration(latencyMs) * time.Millisecond)
		log.Printf("📥 %s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "paynet-api"})
}

// handleLogin mints an HS256 admin token carrying the claims the console
// decodes. The signature is never checked by the console.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if creds.Email != email || creds.Password != password {
		fail(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":        adminID,
		"name":      "Demo Admin",
		"unique_id": "PNADM0001",
		"email":     email,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenTTL).Unix(),
	}).SignedString([]byte("paynet-mock"))
	if err != nil {
		fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	ok(w, map[string]string{"token": token, "role": "admin"}, "")
}

func requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		if len(raw) < 8 || raw[:7] != "Bearer " {
			fail(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		var claims jwt.RegisteredClaims
		if _, _, err := jwt.NewParser().ParseUnverified(raw[7:], &claims); err != nil {
			fail(w, http.StatusUnauthorized, "malformed token")
			return
		}
		if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
			fail(w, http.StatusUnauthorized, "token expired")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func wire(m member, prefix, parentKey string) map[string]any {
	out := map[string]any{
		prefix + "_id":             m.ID,
		prefix + "_unique_id":      m.UniqueID,
		prefix + "_name":           m.Name,
		prefix + "_email":          m.Email,
		prefix + "_phone":          m.Phone,
		prefix + "_wallet_balance": m.Balance,
	}
	if parentKey != "" {
		out[parentKey] = m.ParentID
	}
	return out
}

func (s *store) listMembers(all func() []member, prefix, field string, bare bool) http.HandlerFunc {
	parentKey := map[string]string{"distributor": "master_distributor_id", "user": "distributor_id"}[prefix]
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		parent := chi.URLParam(r, "parentID")
		if parent == "" {
			parent = chi.URLParam(r, "adminID")
		}
		var items []map[string]any
		for _, m := range all() {
			if m.ParentID == parent {
				items = append(items, wire(m, prefix, parentKey))
			}
		}
		switch {
		case len(items) == 0:
			ok(w, nil, "")
		case bare:
			ok(w, items, "")
		default:
			ok(w, map[string]any{field: items}, "")
		}
	}
}

func (s *store) list(data func(*http.Request) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		ok(w, data(r), "")
	}
}

func (s *store) create(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in map[string]any
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			fail(w, http.StatusBadRequest, "invalid request body")
			return
		}
		phone, _ := in["phone"].(string)
		name, _ := in["name"].(string)
		mail, _ := in["email"].(string)
		if phone == phoneRejected {
			fail(w, http.StatusOK, "Phone number already registered")
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		m := member{Name: name, Email: mail, Phone: phone}
		switch kind {
		case "md":
			m.ID, m.ParentID = s.nextID("md"), adminID
			m.UniqueID = fmt.Sprintf("PNMD%04d", s.seq)
			s.mds = append(s.mds, m)
		case "distributor":
			m.ID, m.ParentID = s.nextID("d"), str(in["master_distributor_id"])
			m.UniqueID = fmt.Sprintf("PNDT%04d", s.seq)
			s.distributors = append(s.distributors, m)
		default:
			m.ID, m.ParentID = s.nextID("u"), str(in["distributor_id"])
			m.UniqueID = fmt.Sprintf("PNRT%04d", s.seq)
			s.users = append(s.users, m)
		}
		ok(w, nil, fmt.Sprintf("%s created with ID %s", name, m.UniqueID))
	}
}

func (s *store) lookup(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	phone := chi.URLParam(r, "phone")
	var pool []member
	var prefix, parentKey string
	switch chi.URLParam(r, "kind") {
	case "md":
		pool, prefix = s.mds, "master_distributor"
	case "distributor":
		pool, prefix, parentKey = s.distributors, "distributor", "master_distributor_id"
	case "user":
		pool, prefix, parentKey = s.users, "user", "distributor_id"
	default:
		fail(w, http.StatusNotFound, "not found")
		return
	}
	if phone == phoneUnknown {
		ok(w, nil, "")
		return
	}
	i := slices.IndexFunc(pool, func(m member) bool { return m.Phone == phone })
	if i < 0 {
		fail(w, http.StatusNotFound, "")
		return
	}
	ok(w, wire(pool[i], prefix, parentKey), "")
}

func (s *store) refund(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := chi.URLParam(r, "txID")
	for _, txs := range s.payouts {
		for _, tx := range txs {
			if tx["payout_transaction_id"] == id {
				if tx["transaction_status"] == "REFUND" {
					fail(w, http.StatusOK, "Transaction already refunded")
					return
				}
				tx["transaction_status"] = "REFUND"
				ok(w, nil, "Refund processed for "+id)
				return
			}
		}
	}
	fail(w, http.StatusNotFound, "transaction not found")
}

func (s *store) ack(msg string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { ok(w, nil, msg) }
}

func (s *store) setFundStatus(w http.ResponseWriter, id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, fr := range s.funds {
		if fr["fund_request_id"] == id {
			if fr["request_status"] != "PENDING" {
				fail(w, http.StatusOK, "Fund request already processed")
				return
			}
			fr["request_status"] = status
			ok(w, nil, "Fund request "+id+" "+status)
			return
		}
	}
	fail(w, http.StatusNotFound, "fund request not found")
}

func (s *store) acceptFund(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ID string `json:"fund_request_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.setFundStatus(w, in.ID, "APPROVED")
}

func (s *store) rejectFund(w http.ResponseWriter, r *http.Request) {
	s.setFundStatus(w, chi.URLParam(r, "id"), "REJECTED")
}

func (s *store) revert(w http.ResponseWriter, r *http.Request) {
	var in map[string]any
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	phone := str(in["phone"])
	if phone == phoneRejected {
		fail(w, http.StatusOK, "Insufficient wallet balance")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reverts = append(s.reverts, map[string]any{
		"revert_id":     s.nextID("rv"),
		"phone":         phone,
		"name":          str(in["user_type"]),
		"amount":        in["amount"],
		"remarks":       str(in["remarks"]),
		"revert_status": "SUCCESS",
		"created_at":    time.Now().UTC().Format(time.RFC3339),
	})
	ok(w, nil, "Amount reverted successfully")
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func ok(w http.ResponseWriter, data any, msg string) {
	writeJSON(w, http.StatusOK, envelope{Status: "success", Data: data, Message: msg})
}

// fail answers status "failed". Some business failures keep HTTP 200, as the
// real API does.
func fail(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, envelope{Status: "failed", Message: msg})
	log.Printf("❌ %d %s", code, msg)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key, defaultValue string) int {
	value := getEnv(key, defaultValue)
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️  Invalid integer value for %s, using default: %s", key, defaultValue)
		intValue, _ = strconv.Atoi(defaultValue)
	}
	return intValue
}
