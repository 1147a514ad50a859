package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/barberbook/BarberBook-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	AvailableSlots []string `json:"availableSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.AvailableSlots))
	for i, slot := range resp.AvailableSlots {
		slots[i] = slot.String()
	}
	return &AvailableSlotsResponse{AvailableSlots: slots}
}

// ToUseCaseRequest создает запрос use case из параметров HTTP запроса
func ToUseCaseRequest(barbershopID, employeeID, serviceID uuid.UUID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BarbershopID: barbershopID,
		EmployeeID:   employeeID,
		ServiceID:    serviceID,
		Date:         date,
	}, nil
}
