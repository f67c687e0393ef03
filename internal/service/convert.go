package service

import (
	"github.com/mmynk/defter/internal/calculator"
	"github.com/mmynk/defter/internal/models"
	v1 "github.com/mmynk/defter/pkg/api/defterv1"
)

func userToAPI(u *models.User) *v1.User {
	return &v1.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func groupToAPI(g *models.Group) *v1.Group {
	return &v1.Group{
		ID:        g.ID,
		Name:      g.Name,
		CreatedBy: g.CreatedBy,
		CreatedAt: g.CreatedAt,
	}
}

func personToAPI(p *models.Person) *v1.Person {
	return &v1.Person{
		ID:      p.ID,
		GroupID: p.GroupID,
		Name:    p.Name,
		UserID:  p.UserID,
		Active:  p.Active,
	}
}

func peopleToAPI(people []*models.Person) []*v1.Person {
	out := make([]*v1.Person, len(people))
	for i, p := range people {
		out[i] = personToAPI(p)
	}
	return out
}

// purchaseToCalc converts a stored purchase for the settlement engine.
func purchaseToCalc(p *models.Purchase, names map[string]string) calculator.Purchase {
	splits := make([]calculator.Split, len(p.Splits))
	for i, s := range p.Splits {
		splits[i] = calculator.Split{
			PersonID:   s.PersonID,
			PersonName: nameOrUnknown(names, s.PersonID),
			Amount:     s.Amount,
		}
	}
	return calculator.Purchase{ID: p.ID, Total: p.Total, Splits: splits}
}

func paymentToCalc(p *models.Payment) calculator.Payment {
	return calculator.Payment{
		FromID: p.FromPersonID,
		ToID:   p.ToPersonID,
		Amount: p.Amount,
		Status: calculator.PaymentStatus(p.Status),
	}
}

func purchaseToAPI(p *models.Purchase, names map[string]string, opts calculator.Options) *v1.Purchase {
	shares := calculator.Breakdown(purchaseToCalc(p, names), opts)
	splits := make([]v1.PurchaseSplit, len(shares))
	for i, s := range shares {
		splits[i] = v1.PurchaseSplit{
			PersonID:   s.PersonID,
			PersonName: s.PersonName,
			Paid:       s.Paid,
			Share:      s.Share,
			Delta:      s.Delta,
		}
	}

	return &v1.Purchase{
		ID:          p.ID,
		GroupID:     p.GroupID,
		Date:        p.Date,
		Description: p.Description,
		Kind:        p.Kind,
		TotalAmount: p.Total,
		Splits:      splits,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func paymentToAPI(p *models.Payment, names map[string]string) *v1.Payment {
	return &v1.Payment{
		ID:           p.ID,
		GroupID:      p.GroupID,
		FromPersonID: p.FromPersonID,
		FromName:     nameOrUnknown(names, p.FromPersonID),
		ToPersonID:   p.ToPersonID,
		ToName:       nameOrUnknown(names, p.ToPersonID),
		Amount:       p.Amount,
		PaidAt:       p.PaidAt,
		Note:         p.Note,
		Status:       string(p.Status),
		RequestedBy:  p.RequestedBy,
		ConfirmedBy:  p.ConfirmedBy,
		ConfirmedAt:  p.ConfirmedAt,
		CreatedAt:    p.CreatedAt,
	}
}

func nameOrUnknown(names map[string]string, id string) string {
	if name := names[id]; name != "" {
		return name
	}
	return calculator.UnknownName
}
