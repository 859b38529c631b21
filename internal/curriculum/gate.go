package curriculum

import "versekids/internal/models"

// Gate is the render contract for one activity
type Gate struct {
	Visible      bool `json:"visible"`
	Interactable bool `json:"interactable"`
}

// Gates maps each activity shown to the learner to its gate
type Gates map[models.ActivityKind]Gate

// GateInput bundles everything the decision table reads
type GateInput struct {
	Progress  *models.LearnerProgress
	Override  models.OverrideConfig
	TimeOfDay TimeOfDay
	Premium   bool
}

// EffectiveDay returns the forced day when the override pins one, else the
// learner's synced day.
func EffectiveDay(p *models.LearnerProgress, o models.OverrideConfig) int {
	if day, ok := o.ForcedDay(); ok {
		return day
	}
	return p.DayOfWeek
}

// Evaluate computes visibility and interactability for every activity the
// learner's age band can see. It never mutates its input.
func Evaluate(in GateInput) Gates {
	p := in.Progress
	o := in.Override
	day := EffectiveDay(p, o)
	unlockAll := o.UnlockAllActive()
	evening := eveningGate(in.TimeOfDay)

	gates := Gates{
		models.ActivityWriting:    gate(o.Enabled || day == Friday, true),
		models.ActivityBibleBooks: {Visible: true, Interactable: true},
	}

	if models.IsYounger(p.Age) {
		verseADone := p.IsCompleted(models.CompletionVerse, models.VariantA)
		verseBDone := p.IsCompleted(models.CompletionVerse, models.VariantB)

		gates[models.ActivityVerseA] = gate(
			o.Enabled || !IsWeekend(day),
			unlockAll || day == Monday || day == Tuesday ||
				(day >= Wednesday && day <= Friday && !verseADone),
		)
		gates[models.ActivityVerseB] = gate(
			(o.Enabled || (day >= Wednesday && day <= Friday)) && inBand(p.Age, 4, 7),
			unlockAll || day == Wednesday || day == Thursday ||
				(day == Friday && !verseBDone),
		)
		gates[models.ActivityBookArrange] = gate(true, unlockAll || in.Premium)
		gates[models.ActivityNightPrayer] = evening
		return gates
	}

	todayDone := p.IsCompleted(models.CompletionDevotional, models.VariantNone)
	gates[models.ActivityTodayVerse] = gate(
		o.Enabled || !IsWeekend(day),
		unlockAll || day != Friday || !todayDone,
	)
	gates[models.ActivityQuiz] = gate(
		(o.Enabled || (day >= Wednesday && day <= Friday)) && inBand(p.Age, 8, 12),
		unlockAll || (day >= Wednesday && day <= Friday),
	)
	gates[models.ActivityNightReflection] = evening
	return gates
}

// gate combines the two table columns; an invisible activity is never
// interactable.
func gate(visible, interactable bool) Gate {
	return Gate{Visible: visible, Interactable: visible && interactable}
}

func eveningGate(t TimeOfDay) Gate {
	on := t == Evening
	return Gate{Visible: on, Interactable: on}
}

func inBand(age, lo, hi int) bool {
	return age >= lo && age <= hi
}
