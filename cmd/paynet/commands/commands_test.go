package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"paynet/internal/platform/config"
	"paynet/internal/session/store"
	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/platform/httputil"
	"paynet/pkg/platform/validation"
	"paynet/pkg/testutil"
)

type CLISuite struct {
	suite.Suite
	mux      *http.ServeMux
	upstream *httptest.Server
	calls    atomic.Int32
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.calls.Store(0)
	s.mux = http.NewServeMux()
	s.upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		s.mux.ServeHTTP(w, r)
	}))
	s.T().Setenv("PAYNET_SESSION_DIR", s.T().TempDir())
	s.T().Setenv("PAYNET_API_BASE_URL", s.upstream.URL)
	s.T().Setenv("PAYNET_LOG_LEVEL", "error")

	token := testutil.NewTokenBuilder(time.Now()).Build()
	s.mux.HandleFunc("POST /admin/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds["password"] != "s3cret-pass" {
			reply(w, http.StatusUnauthorized, `{"status":"failed","message":"invalid email or password"}`)
			return
		}
		reply(w, http.StatusOK, `{"status":"success","data":{"token":"`+token+`","role":"admin"}}`)
	})
}

func (s *CLISuite) TearDownTest() {
	s.upstream.Close()
}

func reply(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (s *CLISuite) run(stdin string, args ...string) (string, error) {
	var out, errOut bytes.Buffer
	root := NewRootCommand(strings.NewReader(stdin), &out, &errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *CLISuite) login() {
	_, err := s.run("", "login", "--email", "Asha@Paynet.in", "--password", "s3cret-pass")
	s.Require().NoError(err)
}

func (s *CLISuite) TestSession() {
	s.Run("whoami without a session asks for login", func() {
		_, err := s.run("", "whoami")
		s.Require().Error(err)
		s.Equal(MessageLogin, describe(err))
	})

	s.Run("wrong password shows the server message", func() {
		_, err := s.run("", "login", "--email", "asha@paynet.in", "--password", "nope-nope")
		s.Require().Error(err)
		s.Equal("invalid email or password", describe(err))
	})

	s.Run("password is read from stdin", func() {
		out, err := s.run("s3cret-pass\n", "login", "--email", "asha@paynet.in")
		s.Require().NoError(err)
		s.Contains(out, "logged in as "+testutil.TestAdmin.Name)
	})

	s.Run("whoami decodes the stored token", func() {
		out, err := s.run("", "whoami")
		s.Require().NoError(err)
		s.Contains(out, testutil.TestAdmin.ID)
		s.Contains(out, "admin")
	})

	s.Run("logout clears the session", func() {
		_, err := s.run("", "logout")
		s.Require().NoError(err)
		_, err = s.run("", "whoami")
		s.Equal(MessageLogin, describe(err))
	})

	s.Run("corrupt session file asks for login and is removed", func() {
		path := filepath.Join(os.Getenv("PAYNET_SESSION_DIR"), store.FileName)
		s.Require().NoError(os.WriteFile(path, []byte("admin_token: [unterminated\n"), 0o600))

		_, err := s.run("", "whoami")
		s.Require().Error(err)
		s.Equal(MessageLogin, describe(err))
		s.NoFileExists(path)
	})
}

func (s *CLISuite) TestMasterDistributorList() {
	s.login()
	var auth string
	s.mux.HandleFunc("GET /admin/get/md/"+testutil.TestAdmin.ID, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		reply(w, http.StatusOK, `{"status":"success","data":{"master_distributors":[
			{"master_distributor_id":"md_1","master_distributor_unique_id":"PNMD001","master_distributor_name":"Kiran Traders","master_distributor_phone":"9876543210","master_distributor_wallet_balance":1500.5}]}}`)
	})

	out, err := s.run("", "md", "list")
	s.Require().NoError(err)
	s.True(strings.HasPrefix(auth, "Bearer "))
	s.Contains(out, "Kiran Traders")
	s.Contains(out, "1500.50")

	out, err = s.run("", "md", "list", "--json")
	s.Require().NoError(err)
	var items []map[string]any
	s.Require().NoError(json.Unmarshal([]byte(out), &items))
	s.Equal("md_1", items[0]["id"])
}

func (s *CLISuite) TestDistributorListSelectsOnlyMasterDistributor() {
	s.login()
	s.mux.HandleFunc("GET /admin/get/md/"+testutil.TestAdmin.ID, func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"status":"success","data":[{"master_distributor_id":"md_1","master_distributor_name":"Kiran"}]}`)
	})
	s.mux.HandleFunc("GET /admin/get/distributors/md_1", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"status":"success","data":[{"distributor_id":"d_1","distributor_name":"Meena Agencies"}]}`)
	})

	out, err := s.run("", "distributors", "list")
	s.Require().NoError(err)
	s.Contains(out, "Meena Agencies")
}

var profileFlags = []string{
	"--name", "Meena Agencies", "--email", "meena@paynet.in", "--phone", "9876501234",
	"--password", "start-here-1", "--aadhaar", "123412341234", "--pan", "ABCDE1234F",
	"--dob", "1988-02-14", "--address", "12 Market Road, Pune", "--pincode", "411001",
}

func (s *CLISuite) TestDistributorCreateSelectsOnlyMasterDistributor() {
	s.login()
	s.mux.HandleFunc("GET /admin/get/md/"+testutil.TestAdmin.ID, func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"status":"success","data":[{"master_distributor_id":"md_1","master_distributor_name":"Kiran"}]}`)
	})
	s.mux.HandleFunc("GET /admin/get/distributors/md_1", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"status":"success","data":[]}`)
	})
	var parent string
	s.mux.HandleFunc("POST /admin/create/distributor", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		parent, _ = body["master_distributor_id"].(string)
		reply(w, http.StatusOK, `{"status":"success","message":"Distributor created"}`)
	})

	out, err := s.run("", append([]string{"distributors", "create"}, profileFlags...)...)
	s.Require().NoError(err)
	s.Equal("md_1", parent)
	s.Contains(out, "Distributor created")
}

func (s *CLISuite) TestDistributorCreateWithSeveralMasterDistributorsNeedsMD() {
	s.login()
	s.mux.HandleFunc("GET /admin/get/md/"+testutil.TestAdmin.ID, func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"status":"success","data":[{"master_distributor_id":"md_1"},{"master_distributor_id":"md_2"}]}`)
	})
	created := false
	s.mux.HandleFunc("POST /admin/create/distributor", func(w http.ResponseWriter, r *http.Request) {
		created = true
		reply(w, http.StatusOK, `{"status":"success"}`)
	})

	_, err := s.run("", append([]string{"distributors", "create"}, profileFlags...)...)
	s.Require().Error(err)
	s.Equal("select master distributor", validation.Fields(err)["master_distributor_id"])
	s.False(created)
}

func (s *CLISuite) TestRetailerCreateWithoutParentsMakesNoCall() {
	_, err := s.run("", "retailers", "create", "--name", "Ravi")
	s.Require().Error(err)

	fields := validation.Fields(err)
	s.Equal("select master distributor", fields["master_distributor_id"])
	s.Equal("select distributor", fields["distributor_id"])
	s.Contains(describe(err), "master_distributor_id: select master distributor")
	s.Zero(s.calls.Load())
}

func (s *CLISuite) TestRefundNeedsConfirmation() {
	s.login()
	_, err := s.run("n\n", "tx", "refund", "ptx_1", "--user", "u_1")
	s.Require().Error(err)
	s.Equal("confirmation required", validation.Fields(err)["confirm"])
}

func (s *CLISuite) TestRefund() {
	s.login()
	s.mux.HandleFunc("GET /user/payout/get/transactions/u_1", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"status":"success","data":[
			{"payout_transaction_id":"ptx_1","amount":"100","transaction_status":"SUCCESS","created_at":"2026-03-01T10:00:00Z"},
			{"payout_transaction_id":"ptx_2","amount":"100","transaction_status":"REFUND","created_at":"2026-03-02T10:00:00Z"}]}`)
	})
	s.mux.HandleFunc("GET /user/payout/refund/ptx_1", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"status":"success","message":"refund initiated"}`)
	})

	out, err := s.run("y\n", "tx", "refund", "ptx_1", "--user", "u_1")
	s.Require().NoError(err)
	s.Contains(out, "refund initiated")

	_, err = s.run("", "tx", "refund", "ptx_2", "--user", "u_1", "--yes")
	s.Equal(dErrors.CodeConflict, dErrors.CodeOf(err))
}

func (s *CLISuite) TestFundAcceptRefusesDecidedRequest() {
	s.login()
	s.mux.HandleFunc("GET /admin/get/fund/requests/"+testutil.TestAdmin.ID, func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"status":"success","data":[{"fund_request_id":"fr_1","amount":"500","request_status":"APPROVED"}]}`)
	})

	_, err := s.run("", "funds", "accept", "fr_1")
	s.Require().Error(err)
	s.Equal("fund request is already APPROVED", describe(err))
}

func (s *CLISuite) TestTopupRejectsBadAmount() {
	s.login()
	_, err := s.run("", "topup", "--amount", "12.345")
	s.Require().Error(err)
	s.Equal("amount must have at most two decimal places", validation.Fields(err)["amount"])
}

func (s *CLISuite) TestUnreachableServer() {
	s.login()
	s.upstream.Close()

	_, err := s.run("", "tickets")
	s.Require().Error(err)
	s.Equal(httputil.MessageNetwork, describe(err))
}

func TestServerWiring(t *testing.T) {
	cfg := config.Defaults()
	cfg.APIBaseURL = "http://127.0.0.1:1"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv, err := newServer(context.Background(), cfg, logger, prometheus.NewRegistry())
	require.NoError(t, err)
	assert.Nil(t, srv.redis)

	tests := []struct {
		path   string
		status int
	}{
		{"/health/live", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/console/dashboard", http.StatusUnauthorized},
		{"/console/fund-requests", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
