package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"sastarapido/internal/domain"
	"sastarapido/internal/geo"
	"sastarapido/internal/pricing"
	"sastarapido/internal/service"
)

const geohashPrecision = 7

// EstimateHandler serves the estimate form, results and CSV exports.
type EstimateHandler struct {
	estimateService *service.EstimateService
	defaultCurrency domain.Currency
	reconciledChart bool
}

// NewEstimateHandler creates a new EstimateHandler.
// With reconciledChart set, the cost chart shows the minimum-fare top-up as
// its own bar so the bars add up to the total.
func NewEstimateHandler(estimateService *service.EstimateService, defaultCurrency domain.Currency, reconciledChart bool) *EstimateHandler {
	if !defaultCurrency.IsValid() {
		defaultCurrency = domain.CurrencyINR
	}
	return &EstimateHandler{
		estimateService: estimateService,
		defaultCurrency: defaultCurrency,
		reconciledChart: reconciledChart,
	}
}

// estimatePage is the view model of index.html.
type estimatePage struct {
	Form       EstimateForm
	Currencies []domain.Currency
	Errors     map[string]string
	Error      string
	Result     *resultView
}

type resultView struct {
	Estimate       *domain.Estimate
	Symbol         string
	Bars           []chartBar
	PickupGeohash  string
	DropoffGeohash string
}

// Form handles GET /
func (h *EstimateHandler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.page(defaultForm(h.defaultCurrency), nil))
}

// CreateEstimate handles POST /estimate
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	form := defaultForm(h.defaultCurrency)
	if err := c.ShouldBind(&form); err != nil {
		page := h.page(form, nil)
		page.Errors = fieldErrors(err)
		c.HTML(http.StatusBadRequest, "index.html", page)
		return
	}
	if form.Currency == "" {
		form.Currency = string(h.defaultCurrency)
	}

	estimate, err := h.estimateService.CreateEstimate(c.Request.Context(), service.CreateEstimateRequest{
		PickupLat:       form.PickupLat,
		PickupLng:       form.PickupLng,
		DropoffLat:      form.DropoffLat,
		DropoffLng:      form.DropoffLng,
		BaseFee:         form.BaseFee,
		PerKmRate:       form.PerKmRate,
		SurgeMultiplier: form.SurgeMultiplier,
		DiscountPercent: form.DiscountPercent,
		Currency:        domain.Currency(form.Currency),
	})
	if err != nil {
		page := h.page(form, nil)
		page.Error = err.Error()
		c.HTML(mapErrorToHTTPStatus(err), "index.html", page)
		return
	}

	c.HTML(http.StatusOK, "index.html", h.page(formFromEstimate(estimate), estimate))
}

// GetEstimate handles GET /estimates/:id
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.estimateService.GetEstimate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", h.page(formFromEstimate(estimate), estimate))
}

// ExportCSV handles GET /estimates/:id/csv
func (h *EstimateHandler) ExportCSV(c *gin.Context) {
	estimate, err := h.estimateService.GetEstimate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := service.ExportCSV(&buf, estimate); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+service.ExportFilename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *EstimateHandler) page(form EstimateForm, estimate *domain.Estimate) estimatePage {
	page := estimatePage{
		Form:       form,
		Currencies: domain.Currencies,
	}
	if estimate != nil {
		symbol := estimate.Currency.Symbol()
		page.Result = &resultView{
			Estimate:       estimate,
			Symbol:         symbol,
			Bars:           chartBars(pricing.Waterfall(estimate.Breakdown, h.reconciledChart), symbol),
			PickupGeohash:  geo.Geohash(estimate.Pickup, geohashPrecision),
			DropoffGeohash: geo.Geohash(estimate.Dropoff, geohashPrecision),
		}
	}
	return page
}
