package services

import (
	"github.com/google/uuid"

	"gymtrack/internal/models/db_models"
	"gymtrack/internal/models/response_models"
)

// AnnotatePurchase projects a stored purchase into the view one account is
// allowed to see. It never mutates the record: the cost-zeroing for partners
// is a property of the response value only.
func AnnotatePurchase(purchase *db_models.Purchase, viewer uuid.UUID) response_models.PurchaseResponse {
	isOwner := purchase.OwnerID == viewer

	resp := response_models.PurchaseResponse{
		ID:                purchase.ID.String(),
		DurationMinutes:   purchase.DurationMinutes,
		NumPeople:         purchase.NumPeople,
		TotalSessions:     purchase.TotalSessions,
		SessionsRemaining: purchase.SessionsRemaining,
		PurchaseDate:      purchase.PurchaseDate,
		IsOwner:           isOwner,
	}
	if purchase.PartnerEmail != nil {
		resp.PartnerEmail = *purchase.PartnerEmail
	}

	if isOwner {
		resp.Cost = purchase.Cost
		resp.PartnerName = partnerDisplayName(purchase)
	} else {
		// The buyer paid; the partner sees the shared balance but not the money.
		resp.Cost = 0
		resp.PartnerName = purchase.Owner.FullName
	}
	return resp
}

// AnnotateSession mirrors AnnotatePurchase for consumption events. The
// effective partner is the explicit per-session partner when one was recorded,
// otherwise the purchase's partner.
func AnnotateSession(session *db_models.Session, viewer uuid.UUID) response_models.SessionResponse {
	isOwner := session.CreatedByID == viewer

	resp := response_models.SessionResponse{
		ID:                session.ID.String(),
		PurchaseID:        session.PurchaseID.String(),
		SessionDate:       session.SessionDate,
		DurationMinutes:   session.DurationMinutes,
		Trainer:           session.Trainer,
		NumPeople:         session.Purchase.NumPeople,
		PurchaseExhausted: session.Purchase.SessionsRemaining == 0,
		IsOwner:           isOwner,
	}
	if session.TrainerRef != nil {
		resp.Trainer = session.TrainerRef.Name
		resp.TrainerID = session.TrainerRef.ID.String()
	} else if session.TrainerID != nil {
		resp.TrainerID = session.TrainerID.String()
	}

	if isOwner {
		if partner := effectiveSessionPartner(session); partner != nil {
			resp.PartnerName = partner.FullName
		} else if session.Purchase.PartnerEmail != nil {
			resp.PartnerName = *session.Purchase.PartnerEmail
		}
	} else {
		resp.PartnerName = session.CreatedBy.FullName
	}
	return resp
}

// partnerDisplayName shows the linked partner's name to the buyer, falling
// back to the stored email while the partner has no account yet.
func partnerDisplayName(purchase *db_models.Purchase) string {
	if purchase.PartnerAccount != nil {
		return purchase.PartnerAccount.FullName
	}
	if purchase.PartnerEmail != nil {
		return *purchase.PartnerEmail
	}
	return ""
}

func effectiveSessionPartner(session *db_models.Session) *db_models.Account {
	if session.PartnerAccount != nil {
		return session.PartnerAccount
	}
	return session.Purchase.PartnerAccount
}
