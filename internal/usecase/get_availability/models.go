package get_availability

import "time"

// Request модель запроса расчёта доступности.
// Date несёт только календарные компоненты (год, месяц, день); они
// интерпретируются как местная дата бизнеса, день недели вычисляется
// в его часовом поясе.
type Request struct {
	ProfessionalID  int64     // ID мастера
	Date            time.Time // Целевая календарная дата
	DurationMinutes int       // Суммарная длительность выбранных услуг в минутах
}

// Response модель ответа со списком доступных моментов начала.
// AvailableTimes - UTC-моменты по возрастанию; пустой список - нормальный
// результат (выходной, нет расписания, всё занято).
type Response struct {
	ProfessionalID int64
	Date           time.Time   // Местная календарная дата расчёта
	AvailableTimes []time.Time // Доступные моменты начала в UTC
}
