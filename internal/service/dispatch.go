package service

import (
	"fmt"

	"locmaq-backend/internal/domain"
)

// DeriveNotification maps a quote status to the notification the counter-party
// receives: who gets it, its category, its title and its body. The mapping is
// total — any status outside the table falls back to an informational update
// addressed to the owner.
func DeriveNotification(q *domain.Quote, status domain.QuoteStatus) *domain.Notification {
	var (
		recipient string
		noteType  domain.NotificationType
		title     string
		body      string
	)

	switch status {
	case domain.QuoteStatusQuoted:
		recipient = q.RequesterID
		noteType = domain.NotificationTypeQuote
		title = "Orçamento Respondido"
		body = fmt.Sprintf("O proprietário respondeu seu pedido de orçamento para %s.", q.MachineName)
	case domain.QuoteStatusAccepted:
		recipient = q.OwnerID
		noteType = domain.NotificationTypeQuote
		title = "Orçamento Aprovado"
		body = fmt.Sprintf("O locatário aprovou o orçamento para %s.", q.MachineName)
	case domain.QuoteStatusRejected:
		recipient = q.OwnerID
		noteType = domain.NotificationTypeQuote
		title = "Orçamento Recusado"
		body = fmt.Sprintf("O locatário recusou o orçamento para %s.", q.MachineName)
	case domain.QuoteStatusInPreparation:
		recipient = q.RequesterID
		noteType = domain.NotificationTypeDelivery
		title = "Entrega Agendada"
		body = fmt.Sprintf("A entrega de %s está sendo preparada pelo proprietário.", q.MachineName)
	case domain.QuoteStatusDelivered:
		recipient = q.RequesterID
		noteType = domain.NotificationTypeDelivery
		title = "Equipamento Entregue"
		body = fmt.Sprintf("O equipamento %s foi entregue.", q.MachineName)
	case domain.QuoteStatusReturnRequested:
		recipient = q.OwnerID
		noteType = domain.NotificationTypeReturn
		title = "Solicitação de Devolução"
		body = fmt.Sprintf("O locatário solicitou a devolução de %s.", q.MachineName)
	case domain.QuoteStatusPickupScheduled:
		recipient = q.RequesterID
		noteType = domain.NotificationTypeReturn
		title = "Devolução Agendada"
		body = fmt.Sprintf("A coleta de %s foi agendada.", q.MachineName)
	case domain.QuoteStatusCompleted:
		recipient = q.OwnerID
		noteType = domain.NotificationTypeReturn
		title = "Locação Finalizada"
		body = fmt.Sprintf("A locação de %s foi finalizada.", q.MachineName)
	default:
		recipient = q.OwnerID
		noteType = domain.NotificationTypeInfo
		title = "Atualização do Orçamento"
		body = fmt.Sprintf("O orçamento de %s foi atualizado.", q.MachineName)
	}

	return &domain.Notification{
		UserID: recipient,
		Type:   noteType,
		Title:  title,
		Body:   body,
		Data:   map[string]string{"quote_id": q.ID},
		Read:   false,
	}
}
