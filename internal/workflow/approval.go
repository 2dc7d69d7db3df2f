package workflow

import (
	"qms-backend/internal/models"
)

// StatusChanged: Her geçişte yayınlanan sinyal. KPI/arayüz katmanı bu
// sinyali tüketip sayaçlarını tazeler; çekirdek KPI durumu tutmaz.
type StatusChanged struct {
	ID        string
	OldStatus models.ManagerStatus
	NewStatus models.ManagerStatus
}

// Listener: StatusChanged tüketicisi
type Listener func(StatusChanged)

// ApprovalWorkflow: managerStatus geçişlerini yöneten durum makinesi.
//
// Durumlar: Pending (başlangıç), Accepted, Rejected.
// Accepted ve Rejected uç durumdur ama kilitli değildir: karar verilmiş
// bir kaydı yeniden onaylamak/reddetmek geçerli bir iş aksiyonudur
// (yeniden inceleme), idempotent üzerine yazma olarak kalır.
type ApprovalWorkflow struct {
	listeners []Listener
}

func New() *ApprovalWorkflow {
	return &ApprovalWorkflow{}
}

// Subscribe: Geçiş sinyali dinleyicisi ekler
func (w *ApprovalWorkflow) Subscribe(l Listener) {
	w.listeners = append(w.listeners, l)
}

// Transition: Kaydın managerStatus alanını hedef karara taşır.
// Hedef yalnızca Accepted veya Rejected olabilir; Pending'e dönüş yoktur.
// Başarılı her geçiş (durum değişmese bile) StatusChanged yayınlar.
func (w *ApprovalWorkflow) Transition(rec *models.InspectionRecord, decision models.ManagerStatus) error {
	if !decision.IsDecision() {
		verr := &models.ValidationError{}
		verr.Add("status", "geçersiz hedef durum: yalnızca Accepted veya Rejected olabilir")
		return verr
	}

	old := rec.ManagerStatus
	rec.ManagerStatus = decision

	event := StatusChanged{ID: rec.ID, OldStatus: old, NewStatus: decision}
	for _, l := range w.listeners {
		l(event)
	}
	return nil
}
