package notify

import (
	"fmt"
	"time"
)

// CriticalNCMessage builds the escalation email sent to quality management
// when a critical non-conformity is declared.
func CriticalNCMessage(recipients []string, ncID uint, defectType, workstation, description string, dateNC time.Time) Message {
	if description == "" {
		description = "Non spécifiée"
	}

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #E74C3C; color: white; padding: 20px; border-radius: 8px 8px 0 0;">
    <h2 style="margin: 0;">🚨 Non-Conformité CRITIQUE</h2>
  </div>
  <div style="background: white; padding: 20px; border: 1px solid #E0E0E0; border-top: none;">
    <p>Une nouvelle non-conformité <strong>CRITIQUE</strong> a été déclarée :</p>
    <div style="background: #FFF3CD; padding: 15px; border-left: 4px solid #E74C3C; margin: 20px 0;">
      <p><strong>NC #%d</strong></p>
      <p><strong>Type:</strong> %s</p>
      <p><strong>Poste:</strong> %s</p>
      <p><strong>Description:</strong> %s</p>
      <p><strong>Date:</strong> %s</p>
    </div>
    <p style="color: #E74C3C; font-weight: bold;">⚠️ Action immédiate requise</p>
    <p style="color: #7F8C8D; font-size: 12px; margin-top: 30px;">
      Cet email a été envoyé automatiquement par Q-TRACK
    </p>
  </div>
</div>`, ncID, defectType, workstation, description, dateNC.Format("02/01/2006 15:04"))

	text := fmt.Sprintf("Non-Conformité CRITIQUE déclarée - NC #%d\n\nType: %s\nPoste: %s\nDescription: %s\n\n⚠️ Action immédiate requise",
		ncID, defectType, workstation, description)

	return Message{
		To:      recipients,
		Subject: fmt.Sprintf("[Q-TRACK] 🚨 Non-Conformité CRITIQUE déclarée - NC #%d", ncID),
		HTML:    html,
		Text:    text,
	}
}

// ActionAssignedMessage builds the email informing a responsible party that
// a corrective action has been assigned to them.
func ActionAssignedMessage(responsible string, ncID uint, description string, deadlineDays int) Message {
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #2C3E50; color: white; padding: 20px; border-radius: 8px 8px 0 0;">
    <h2 style="margin: 0;">Action corrective assignée</h2>
  </div>
  <div style="background: white; padding: 20px; border: 1px solid #E0E0E0; border-top: none;">
    <p>Une action corrective vous a été assignée pour la NC #%d :</p>
    <div style="background: #EBF5FB; padding: 15px; border-left: 4px solid #2C3E50; margin: 20px 0;">
      <p><strong>Description:</strong> %s</p>
      <p><strong>Délai:</strong> %d jours</p>
    </div>
    <p style="color: #7F8C8D; font-size: 12px; margin-top: 30px;">
      Cet email a été envoyé automatiquement par Q-TRACK
    </p>
  </div>
</div>`, ncID, description, deadlineDays)

	text := fmt.Sprintf("Action corrective assignée - NC #%d\n\nDescription: %s\nDélai: %d jours",
		ncID, description, deadlineDays)

	return Message{
		To:      []string{responsible},
		Subject: fmt.Sprintf("[Q-TRACK] Action corrective assignée - NC #%d", ncID),
		HTML:    html,
		Text:    text,
	}
}
