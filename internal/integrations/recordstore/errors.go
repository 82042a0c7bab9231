package recordstore

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда хранилище не вернуло ни одной записи по id
	ErrBookingNotFound = fmt.Errorf("recordstore client: %w", domain.ErrBookingNotFound)

	// ErrEmptyPatch возвращается, когда в обновлении нет ни одного поля
	ErrEmptyPatch = errors.New("recordstore client: nothing to update")

	// ErrInternal возвращается при внутренних ошибках клиента (запрос не ушёл)
	ErrInternal = errors.New("recordstore client: internal error")

	// ErrUnauthorized возвращается, когда хранилище отклонило ключ доступа
	ErrUnauthorized = errors.New("recordstore client: unauthorized")

	// ErrInvalidResponse возвращается при некорректном ответе от хранилища
	ErrInvalidResponse = errors.New("recordstore client: invalid response")
)
