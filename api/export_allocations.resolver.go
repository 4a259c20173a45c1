package api

import (
	"tradedesk/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

type allocationCsvRow struct {
	StrategyID      string `csv:"strategy_id"`
	StrategyName    string `csv:"strategy_name"`
	AllocatedAmount string `csv:"allocated_amount"`
	IsActive        bool   `csv:"is_active"`
}

func allocationCsvRowsFromDomain(in domain.AllocationSummary) []allocationCsvRow {
	rows := []allocationCsvRow{}
	for _, a := range in.Allocations {
		rows = append(rows, allocationCsvRow{
			StrategyID:      a.StrategyID.String(),
			StrategyName:    a.StrategyName,
			AllocatedAmount: a.AllocatedAmount.StringFixed(2),
			IsActive:        a.IsActive,
		})
	}
	return rows
}

func (m ApiHandler) exportAllocationSummary(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnApiError(c, err)
		return
	}

	summary, err := m.AllocationService.GetSummary(c.Request.Context(), userAccountID)
	if err != nil {
		returnApiError(c, err)
		return
	}

	rows := allocationCsvRowsFromDomain(*summary)

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="allocations.csv"`)
	if err := gocsv.Marshal(&rows, c.Writer); err != nil {
		returnApiError(c, err)
		return
	}
}
