package service

import (
	"encoding/csv"
	"io"
	"strconv"

	"sastarapido/internal/domain"
	"sastarapido/internal/geo"
)

// ExportFilename is the download name of an exported estimate.
const ExportFilename = "sasta_rapido_estimate.csv"

const geohashPrecision = 7

// ExportCSV writes the estimate as a one-row CSV with a header line.
func ExportCSV(w io.Writer, estimate *domain.Estimate) error {
	b := estimate.Breakdown

	cw := csv.NewWriter(w)
	records := [][]string{
		{
			"Distance (km)",
			"Base Fee",
			"Distance Cost",
			"Surge Amount",
			"Discount",
			"Total (" + estimate.Currency.Symbol() + ")",
			"Pickup Geohash",
			"Drop-off Geohash",
		},
		{
			formatNumber(estimate.DistanceKm),
			formatNumber(b.BaseFee),
			formatNumber(b.DistanceCost),
			formatNumber(b.SurgeAmount),
			formatNumber(b.DiscountAmount),
			formatNumber(b.FinalTotal),
			geo.Geohash(estimate.Pickup, geohashPrecision),
			geo.Geohash(estimate.Dropoff, geohashPrecision),
		},
	}
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	return cw.Error()
}

// formatNumber prints the shortest representation, so 20 stays "20" and
// 43.6 stays "43.6".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
