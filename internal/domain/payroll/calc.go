package payroll

import "math"

// RoundCurrency rounds to two decimal places with half-up semantics.
func RoundCurrency(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return math.Floor(amount*100+0.5) / 100
}

func clampHours(hours float64) float64 {
	if math.IsNaN(hours) || hours < 0 {
		return 0
	}
	return hours
}

// ComputeLineItem reduces the work records matching an allocation into a
// payment breakdown. Empty input yields a zero-value line item, never an
// error.
func ComputeLineItem(alloc Allocation, records []WorkRecord, period EventPeriod, rates PersonnelRates, policy OvertimePolicy, opts CalcOptions) PayrollLineItem {
	item := PayrollLineItem{
		PersonnelID: alloc.PersonnelID,
		EventID:     alloc.EventID,
	}

	matched := RecordsForAllocation(alloc, records, period, opts)

	seen := map[string]bool{}
	for _, record := range matched {
		if !seen[record.WorkDate] {
			seen[record.WorkDate] = true
			item.WorkDaysCount++
		}
		item.TotalOvertimeHours += clampHours(record.OvertimeHours)
	}

	item.BasePayment = rates.DailyRate * float64(item.WorkDaysCount)
	item.OvertimePayment, item.OvertimeCachesUsed, item.OvertimeRemainingHours =
		computeOvertimePayment(item.TotalOvertimeHours, rates, policy)

	item.BasePayment = RoundCurrency(item.BasePayment)
	item.OvertimePayment = RoundCurrency(item.OvertimePayment)
	item.TotalPayment = RoundCurrency(item.BasePayment + item.OvertimePayment)
	item.PendingAmount = item.TotalPayment
	return item
}

// computeOvertimePayment applies the resolved policy to the accumulated
// overtime hours. In conversion mode every full threshold multiple pays one
// extra daily rate; the remainder is paid hourly or forfeited per the
// policy. A zero threshold disables conversion and falls back to hourly.
func computeOvertimePayment(totalOvertime float64, rates PersonnelRates, policy OvertimePolicy) (payment float64, cachesUsed int, remaining float64) {
	totalOvertime = clampHours(totalOvertime)
	if totalOvertime == 0 {
		return 0, 0, 0
	}

	if !policy.ConvertToDaily || policy.ThresholdHours <= 0 {
		return totalOvertime * rates.OvertimeRate, 0, totalOvertime
	}

	cachesUsed = int(math.Floor(totalOvertime / policy.ThresholdHours))
	remaining = totalOvertime - float64(cachesUsed)*policy.ThresholdHours

	payment = float64(cachesUsed) * rates.DailyRate
	if policy.RemainderPolicy != RemainderForfeit {
		payment += remaining * rates.OvertimeRate
	}
	return payment, cachesUsed, remaining
}

// ReconcilePayments folds the payment ledger into a line item's paid and
// pending amounts. Only payments with status paid count; pending never goes
// negative when the ledger overshoots the computed total.
func ReconcilePayments(item PayrollLineItem, payments []PaymentRecord) PayrollLineItem {
	var paid float64
	for _, payment := range payments {
		if payment.Status == PaymentStatusPaid {
			paid += payment.Amount
		}
	}
	item.PaidAmount = RoundCurrency(paid)
	item.PendingAmount = RoundCurrency(math.Max(item.TotalPayment-paid, 0))
	item.Paid = item.TotalPayment > 0 && item.PendingAmount == 0
	return item
}
