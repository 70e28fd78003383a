package entities

// Charge derivation. Both charges are pure functions of the current ledger
// and labor state; Recalculate runs after every ledger or labor mutation and
// before every persisted write.

// ComputePartsCharge sums unit_cost*qty over the parts ledger.
func ComputePartsCharge(j JobCard) Money {
	var total Money
	for _, line := range j.Parts {
		total += line.UnitCost * Money(line.Qty)
	}
	return total
}

// ComputeTotalCharge is the parts charge plus the labor charge.
func ComputeTotalCharge(j JobCard) Money {
	return ComputePartsCharge(j) + j.LaborCharge
}

// Recalculate refreshes the persisted derived fields from the current state.
func (j *JobCard) Recalculate() {
	j.PartsCharge = ComputePartsCharge(*j)
	j.TotalCharge = j.PartsCharge + j.LaborCharge
}
