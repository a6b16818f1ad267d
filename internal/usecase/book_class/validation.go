package book_class

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ClassID <= 0 {
		return fmt.Errorf("%w: classID must be positive", ErrInvalidInput)
	}

	return nil
}
