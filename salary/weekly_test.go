package salary_test

import (
	"testing"

	"github.com/warp/payroll-engine/salary"
)

func TestComputeWeekly_WithinContractualHours(t *testing.T) {
	// GIVEN: Fewer hours worked than the contract provides
	// WHEN: Computing the week
	// THEN: All surcharge tiers are zero and gross is hours x rate exactly

	calc := salary.NewCalculator()
	res := calc.ComputeWeekly(30, 35, 15.0)

	if res.NormalHours != 30 {
		t.Errorf("expected 30 normal hours, got %v", res.NormalHours)
	}
	if res.ComplementaryHours != 0 || res.ComplementaryMajoredHours != 0 {
		t.Errorf("expected zero complementary tiers, got %v / %v",
			res.ComplementaryHours, res.ComplementaryMajoredHours)
	}
	if len(res.OvertimeSlices) != 0 || res.TotalOvertimeHours != 0 {
		t.Errorf("expected no overtime, got %+v", res.OvertimeSlices)
	}
	if res.GrossTotal != 30*15.0 {
		t.Errorf("expected gross %v, got %v", 30*15.0, res.GrossTotal)
	}
	if res.Contract != "35h" {
		t.Errorf("expected contract label 35h, got %q", res.Contract)
	}
}

func TestComputeWeekly_FullTimeOvertime(t *testing.T) {
	// GIVEN: 35h contract, 43h worked at 15.0/h
	// WHEN: Computing the week
	// THEN: 35h normal (525), 4h at +10% (66), 4h at +20% (72), gross 663

	calc := salary.NewCalculator()
	res := calc.ComputeWeekly(43, 35, 15.0)

	if res.NormalHours != 35 || res.NormalPay != 525 {
		t.Errorf("expected 35h/525, got %v/%v", res.NormalHours, res.NormalPay)
	}
	if len(res.OvertimeSlices) != 2 {
		t.Fatalf("expected 2 overtime slices, got %d", len(res.OvertimeSlices))
	}

	first := res.OvertimeSlices[0]
	if first.From != 35 || first.To == nil || *first.To != 39 {
		t.Errorf("expected slice bounds [35,39), got [%v,%v)", first.From, first.To)
	}
	if first.Hours != 4 || first.SurchargePct != 10 || first.Pay != 66 {
		t.Errorf("expected 4h at +10%% = 66, got %vh at +%v%% = %v",
			first.Hours, first.SurchargePct, first.Pay)
	}
	if first.MajoredRate != 15.0*1.10 {
		t.Errorf("expected majored rate 16.5, got %v", first.MajoredRate)
	}

	second := res.OvertimeSlices[1]
	if second.Hours != 4 || second.SurchargePct != 20 || second.Pay != 72 {
		t.Errorf("expected 4h at +20%% = 72, got %vh at +%v%% = %v",
			second.Hours, second.SurchargePct, second.Pay)
	}

	if res.TotalOvertimeHours != 8 {
		t.Errorf("expected 8 overtime hours, got %v", res.TotalOvertimeHours)
	}
	if res.GrossTotal != 663 {
		t.Errorf("expected gross 663, got %v", res.GrossTotal)
	}
}

func TestComputeWeekly_PartTimeComplementary(t *testing.T) {
	// GIVEN: 20h contract, 32h worked at 15.0/h
	// WHEN: Computing the week
	// THEN: 2h complementary at +10%, 10h complementary-majoree at +25%,
	//       no overtime below the 35h threshold

	calc := salary.NewCalculator()
	res := calc.ComputeWeekly(32, 20, 15.0)

	if res.NormalHours != 20 || res.NormalPay != 300 {
		t.Errorf("expected 20h/300, got %v/%v", res.NormalHours, res.NormalPay)
	}
	if res.ComplementaryHours != 2 {
		t.Errorf("expected 2 complementary hours, got %v", res.ComplementaryHours)
	}
	if res.ComplementaryPay != 2*15.0*1.10 {
		t.Errorf("expected complementary pay 33, got %v", res.ComplementaryPay)
	}
	if res.ComplementaryMajoredHours != 10 {
		t.Errorf("expected 10 majored hours, got %v", res.ComplementaryMajoredHours)
	}
	if res.ComplementaryMajoredPay != 10*15.0*1.25 {
		t.Errorf("expected majored pay 187.5, got %v", res.ComplementaryMajoredPay)
	}
	if len(res.OvertimeSlices) != 0 {
		t.Errorf("expected no overtime below 35h, got %+v", res.OvertimeSlices)
	}

	want := 300 + 2*15.0*1.10 + 10*15.0*1.25
	if res.GrossTotal != want {
		t.Errorf("expected gross %v, got %v", want, res.GrossTotal)
	}
}

func TestComputeWeekly_PartTimeIntoOvertime(t *testing.T) {
	// GIVEN: 25h contract, 40h worked at 15.0/h
	// WHEN: Computing the week
	// THEN: Complementary brackets fill up to 35h, overtime applies above
	//       the 35h floor even though the contract is below it

	calc := salary.NewCalculator()
	res := calc.ComputeWeekly(40, 25, 15.0)

	if res.NormalHours != 25 {
		t.Errorf("expected 25 normal hours, got %v", res.NormalHours)
	}
	if res.ComplementaryHours != 2.5 {
		t.Errorf("expected 2.5 complementary hours, got %v", res.ComplementaryHours)
	}
	if res.ComplementaryMajoredHours != 7.5 {
		t.Errorf("expected 7.5 majored hours, got %v", res.ComplementaryMajoredHours)
	}

	if len(res.OvertimeSlices) != 2 {
		t.Fatalf("expected 2 overtime slices, got %d", len(res.OvertimeSlices))
	}
	if res.OvertimeSlices[0].Hours != 4 || res.OvertimeSlices[0].SurchargePct != 10 {
		t.Errorf("expected 4h at +10%%, got %vh at +%v%%",
			res.OvertimeSlices[0].Hours, res.OvertimeSlices[0].SurchargePct)
	}
	if res.OvertimeSlices[1].Hours != 1 || res.OvertimeSlices[1].SurchargePct != 20 {
		t.Errorf("expected 1h at +20%%, got %vh at +%v%%",
			res.OvertimeSlices[1].Hours, res.OvertimeSlices[1].SurchargePct)
	}

	want := 25*15.0 + 2.5*15.0*1.10 + 7.5*15.0*1.25 + 4*15.0*1.10 + 1*15.0*1.20
	if res.GrossTotal != want {
		t.Errorf("expected gross %v, got %v", want, res.GrossTotal)
	}
}

func TestComputeWeekly_39hContract(t *testing.T) {
	// A 39h contract has no +10% bracket: overtime starts at +20% above 39h.
	calc := salary.NewCalculator()
	res := calc.ComputeWeekly(45, 39, 15.0)

	if res.NormalHours != 39 {
		t.Errorf("expected 39 normal hours, got %v", res.NormalHours)
	}
	if len(res.OvertimeSlices) != 2 {
		t.Fatalf("expected 2 overtime slices, got %d", len(res.OvertimeSlices))
	}
	if res.OvertimeSlices[0].Hours != 4 || res.OvertimeSlices[0].SurchargePct != 20 {
		t.Errorf("expected 4h at +20%%, got %vh at +%v%%",
			res.OvertimeSlices[0].Hours, res.OvertimeSlices[0].SurchargePct)
	}
	if res.OvertimeSlices[1].Hours != 2 || res.OvertimeSlices[1].SurchargePct != 50 {
		t.Errorf("expected 2h at +50%%, got %vh at +%v%%",
			res.OvertimeSlices[1].Hours, res.OvertimeSlices[1].SurchargePct)
	}

	want := 39*15.0 + 4*15.0*1.20 + 2*15.0*1.50
	if res.GrossTotal != want {
		t.Errorf("expected gross %v, got %v", want, res.GrossTotal)
	}
}

func TestComputeWeekly_UnknownContractFallback(t *testing.T) {
	// GIVEN: A 28h contract absent from the table
	// WHEN: Computing 33h worked at 10.0/h
	// THEN: Default policy: normal = min(worked, 28), excess at flat +25%

	calc := salary.NewCalculator()
	res := calc.ComputeWeekly(33, 28, 10.0)

	if res.NormalHours != 28 || res.NormalPay != 280 {
		t.Errorf("expected 28h/280, got %v/%v", res.NormalHours, res.NormalPay)
	}
	if res.ComplementaryHours != 0 || res.ComplementaryMajoredHours != 0 {
		t.Error("default policy has no complementary tiers")
	}
	if len(res.OvertimeSlices) != 1 {
		t.Fatalf("expected 1 flat overtime slice, got %d", len(res.OvertimeSlices))
	}
	slice := res.OvertimeSlices[0]
	if slice.Hours != 5 || slice.SurchargePct != 25 {
		t.Errorf("expected 5h at +25%%, got %vh at +%v%%", slice.Hours, slice.SurchargePct)
	}
	if res.OvertimePay != 5*10.0*1.25 {
		t.Errorf("expected overtime pay 62.5, got %v", res.OvertimePay)
	}
	if res.GrossTotal != 280+62.5 {
		t.Errorf("expected gross 342.5, got %v", res.GrossTotal)
	}
	if res.TotalOvertimeHours != 5 {
		t.Errorf("expected 5 overtime hours, got %v", res.TotalOvertimeHours)
	}
}

func TestComputeWeekly_UnknownContractNoExcess(t *testing.T) {
	calc := salary.NewCalculator()
	res := calc.ComputeWeekly(20, 28, 10.0)

	if res.NormalHours != 20 || res.GrossTotal != 200 {
		t.Errorf("expected 20h/200, got %v/%v", res.NormalHours, res.GrossTotal)
	}
	if len(res.OvertimeSlices) != 0 {
		t.Errorf("expected no overtime, got %+v", res.OvertimeSlices)
	}
}

func TestComputeWeekly_ZeroHours(t *testing.T) {
	calc := salary.NewCalculator()
	res := calc.ComputeWeekly(0, 35, 15.0)
	if res.GrossTotal != 0 {
		t.Errorf("expected zero gross, got %v", res.GrossTotal)
	}
}

func TestComputeWeekly_DeepOvertimeOpenBracket(t *testing.T) {
	// Hours beyond 43 land in the open-ended +50% bracket.
	calc := salary.NewCalculator()
	res := calc.ComputeWeekly(47, 35, 10.0)

	if len(res.OvertimeSlices) != 3 {
		t.Fatalf("expected 3 overtime slices, got %d", len(res.OvertimeSlices))
	}
	last := res.OvertimeSlices[2]
	if last.From != 43 || last.To != nil {
		t.Errorf("expected open bracket from 43, got [%v,%v)", last.From, last.To)
	}
	if last.Hours != 4 || last.Pay != 4*10.0*1.50 {
		t.Errorf("expected 4h at 15.0, got %vh pay %v", last.Hours, last.Pay)
	}
}
