package crm

// ===============================
// Appointment Status
// ===============================

type Status string

// Valores sugeridos no formulário. O armazenamento aceita qualquer
// string e qualquer transição: não há validação nem máquina de
// estados, de propósito.
const (
	StatusScheduled Status = "Scheduled"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusCanceled  Status = "Canceled"
	StatusNoShow    Status = "No-show"
)

func Statuses() []Status {
	return []Status{
		StatusScheduled,
		StatusConfirmed,
		StatusCompleted,
		StatusCanceled,
		StatusNoShow,
	}
}

func InitialStatus() Status {
	return StatusScheduled
}
