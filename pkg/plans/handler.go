package plans

import (
	"errors"
	"net/http"

	"github.com/ampliy/ampliy/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct{}

type PlansDTO struct {
	Options  []Option         `json:"options"`
	Benefits []BenefitSection `json:"benefits"`
}

func NewHandler() *Handler {
	return &Handler{}
}

// GetPlans godoc
// @Summary Payment options and plan benefits
// @Tags Plans
// @Produce json
// @Success 200 {object} PlansDTO
// @Router /api/plans [get]
func (h *Handler) GetPlans(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, PlansDTO{Options: Options(), Benefits: Benefits()})
}

// ConfirmPurchase godoc
// @Summary Confirm the purchase of a plan
// @Tags Plans
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} Purchase
// @Failure 404 {object} rest.ErrorResponse "Plan not found"
// @Router /api/plans/{planId}/purchase [post]
func (h *Handler) ConfirmPurchase(w http.ResponseWriter, r *http.Request) {
	planId := mux.Vars(r)["planId"]
	purchase, err := Confirm(planId)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Plan not found", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Debugf("purchase of plan %s confirmed", planId)
	rest.WriteJSON(w, http.StatusOK, purchase)
}
