package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "paynet/pkg/domain-errors"
)

type kycForm struct {
	Name    string `json:"name" validate:"required,notblank,max=20"`
	Phone   string `json:"phone" validate:"required,phone10"`
	Aadhaar string `json:"aadhaar_number" validate:"required,aadhaar"`
	PAN     string `json:"pan_number" validate:"required,pan"`
	DOB     string `json:"date_of_birth" validate:"required,notfuture"`
	Pincode string `json:"pincode" validate:"omitempty,pincode"`
}

func validForm() kycForm {
	return kycForm{
		Name:    "Asha Traders",
		Phone:   "9876543210",
		Aadhaar: "123412341234",
		PAN:     "ABCDE1234F",
		DOB:     "1990-04-12",
	}
}

func TestStruct(t *testing.T) {
	pinned := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	now = func() time.Time { return pinned }
	t.Cleanup(func() { now = time.Now })

	t.Run("valid form has no field errors", func(t *testing.T) {
		assert.Empty(t, Struct(validForm()))
	})

	t.Run("reports every failing field by json name", func(t *testing.T) {
		f := validForm()
		f.Phone = "98765"
		f.Aadhaar = "1234"
		f.PAN = "abcde1234f"
		f.Name = "   "

		errs := Struct(f)
		require.Len(t, errs, 4)
		assert.Equal(t, "phone must be a 10-digit number", errs["phone"])
		assert.Equal(t, "aadhaar number must be a 12-digit number", errs["aadhaar_number"])
		assert.Equal(t, "pan number must look like ABCDE1234F", errs["pan_number"])
		assert.Equal(t, "name is required", errs["name"])
	})

	t.Run("date of birth may be today but not tomorrow", func(t *testing.T) {
		f := validForm()
		f.DOB = "2026-03-10"
		assert.Empty(t, Struct(f))

		f.DOB = "2026-03-11"
		assert.Contains(t, Struct(f), "date_of_birth")
	})

	t.Run("today is judged by the local calendar date", func(t *testing.T) {
		ist := time.FixedZone("IST", 5*3600+1800)
		now = func() time.Time { return time.Date(2026, 10, 20, 1, 30, 0, 0, ist) }
		t.Cleanup(func() { now = func() time.Time { return pinned } })

		f := validForm()
		f.DOB = "2026-10-20"
		assert.Empty(t, Struct(f))

		f.DOB = "2026-10-21"
		assert.Contains(t, Struct(f), "date_of_birth")
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		f := validForm()
		f.DOB = "12/04/1990"
		assert.Contains(t, Struct(f), "date_of_birth")
	})

	t.Run("optional pincode only checked when present", func(t *testing.T) {
		f := validForm()
		f.Pincode = "12"
		assert.Contains(t, Struct(f), "pincode")
	})
}

func TestFieldErrors(t *testing.T) {
	t.Run("empty set yields nil error", func(t *testing.T) {
		assert.NoError(t, FieldErrors{}.Err())
	})

	t.Run("error carries validation code and fields", func(t *testing.T) {
		err := Field("distributor_id", "select distributor")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Equal(t, FieldErrors{"distributor_id": "select distributor"}, Fields(err))
	})

	t.Run("merge keeps first message per field", func(t *testing.T) {
		f := FieldErrors{"phone": "first"}
		f.Merge(FieldErrors{"phone": "second", "email": "bad"})
		assert.Equal(t, "first", f["phone"])
		assert.Equal(t, "bad", f["email"])
	})

	t.Run("error string is sorted and stable", func(t *testing.T) {
		f := FieldErrors{"b": "two", "a": "one"}
		assert.Equal(t, "a: one; b: two", f.Error())
	})
}
