package httpadapter

import (
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
)

// defaultsRequest is the body of PUT /api/v1/defaults. Values may be sent
// as JSON numbers or strings.
type defaultsRequest struct {
	CPM            decimal.Decimal `json:"cpm" validate:"required,gt=0"`
	CPC            decimal.Decimal `json:"cpc" validate:"required,gt=0"`
	CPE            decimal.Decimal `json:"cpe" validate:"required,gt=0"`
	MaxMultiplier  decimal.Decimal `json:"maxMultiplier" validate:"required,gte=1"`
	CompetitorStep decimal.Decimal `json:"competitorStep" validate:"required,gt=0"`
}

func (r defaultsRequest) toDomain() domain.BiddingDefaults {
	return domain.BiddingDefaults{
		CPM:            r.CPM,
		CPC:            r.CPC,
		CPE:            r.CPE,
		MaxMultiplier:  r.MaxMultiplier,
		CompetitorStep: r.CompetitorStep,
	}
}

// newValidator lets numeric tags apply to decimal fields.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// handleGetDefaults returns the defaults the next run will use, together
// with any warnings produced while sanitising them. If nothing has been
// stored yet the built-in values are returned with stored=false.
func (h *Handler) handleGetDefaults(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetDefaults(r.Context())
	if err != nil {
		h.writeError(w, "get defaults error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

// handlePutDefaults replaces the bidding defaults. Invalid bodies produce
// HTTP 400; the new values apply from the next run.
func (h *Handler) handlePutDefaults(w http.ResponseWriter, r *http.Request) {
	var req defaultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.svc.UpdateDefaults(r.Context(), req.toDomain())
	if err != nil {
		h.writeError(w, "update defaults error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}
