package ratings

// MonthNames are the calendar labels of the twelve periods, in order.
// A sheet named exactly like a label holds that month's scores.
var MonthNames = [12]string{
	"Январь",
	"Февраль",
	"Март",
	"Апрель",
	"Май",
	"Июнь",
	"Июль",
	"Август",
	"Сентябрь",
	"Октябрь",
	"Ноябрь",
	"Декабрь",
}
