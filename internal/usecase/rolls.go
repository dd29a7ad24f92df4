package usecase

import "github.com/wraplens/backend/internal/domain"

// ExpandRolls produces one Roll per physical roll in a wrapping-paper pack,
// numbered 1..quantity with no gaps. OnHand and MaxArea both start at the
// per-roll size; print names are assigned cyclically by position. Pairing is
// never inferred, so PairedRollNumber stays null.
func ExpandRolls(quantity int, perRoll float64, names []string, hasReverse bool) []domain.Roll {
	if quantity <= 0 {
		return nil
	}

	rolls := make([]domain.Roll, 0, quantity)
	for i := 0; i < quantity; i++ {
		rolls = append(rolls, domain.Roll{
			RollNumber:     i + 1,
			OnHand:         perRoll,
			MaxArea:        perRoll,
			PrintName:      AssignPrintName(i, names),
			HasReverseSide: hasReverse,
		})
	}

	return rolls
}
