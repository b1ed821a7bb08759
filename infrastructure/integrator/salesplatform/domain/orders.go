package salesdomain

// DaySum é o total de um dia em /ordersByDay
type DaySum struct {
	ID           string `json:"_id"` // YYYY-MM-DD
	Total        Amount `json:"totalPorDia"`
	TotalOrders  Amount `json:"totalOrdensPorDia"`
	TotalNumbers Amount `json:"totalNumerosPorDia"`
}

type OrdersByDayResponse struct {
	SumsByDay []DaySum `json:"somasPorDia"`
}

// Day retorna o total do dia informado
func (r OrdersByDayResponse) Day(date string) (DaySum, bool) {
	for _, day := range r.SumsByDay {
		if day.ID == date {
			return day, true
		}
	}
	return DaySum{}, false
}
