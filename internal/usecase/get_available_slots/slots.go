package get_available_slots

// minuteInterval полуоткрытый интервал [Start, End) в минутах от полуночи
type minuteInterval struct {
	Start int
	End   int
}

// generateAvailableSlots генерирует отсортированный список доступных времен начала
// (в минутах от полуночи) для услуги заданной длительности.
//
// Кандидаты перебираются линейно от времени открытия с фиксированным шагом slotStep:
// t = open + k*slotStep. Кандидат принимается, если услуга целиком помещается в
// рабочее окно (t + duration <= close; слот, вылезающий за закрытие, отбрасывается,
// а не обрезается) и интервал [t, t+duration) не пересекает ни один перерыв и ни
// одну занятую запись.
//
// Пересечение проверяется по правилу полуоткрытых интервалов:
// t < end && t+duration > start. Слот, заканчивающийся ровно в начале перерыва,
// или начинающийся ровно в его конце, допустим. Интервалы могут быть неотсортированы,
// дублироваться и пересекаться между собой; интервал целиком вне рабочего окна
// просто никогда не сработает.
//
// Функция тотальна: никаких побочных эффектов, никакой зависимости от текущего
// времени, а нарушенные предусловия (duration <= 0, open >= close) дают пустой
// результат, а не панику.
func generateAvailableSlots(
	openMinutes int,
	closeMinutes int,
	breaks []minuteInterval,
	booked []minuteInterval,
	serviceDuration int,
	slotStep int,
) []int {
	slots := make([]int, 0)

	if serviceDuration <= 0 || slotStep <= 0 {
		return slots
	}
	if openMinutes < 0 || openMinutes >= closeMinutes {
		return slots
	}

	for t := openMinutes; t+serviceDuration <= closeMinutes; t += slotStep {
		if overlapsAny(t, t+serviceDuration, breaks) {
			continue
		}
		if overlapsAny(t, t+serviceDuration, booked) {
			continue
		}
		slots = append(slots, t)
	}

	return slots
}

// overlapsAny возвращает true, если [start, end) пересекает хотя бы один интервал
func overlapsAny(start, end int, intervals []minuteInterval) bool {
	for _, interval := range intervals {
		if start < interval.End && end > interval.Start {
			return true
		}
	}
	return false
}
