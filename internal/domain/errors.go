package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUsernameTaken     = errors.New("el nombre de usuario ya está en uso")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// EmptySaleError indica que la venta no trae ningún ítem.
type EmptySaleError struct{}

func (e *EmptySaleError) Error() string {
	return "Debe proporcionar al menos un producto para la venta"
}

func (e *EmptySaleError) Unwrap() error { return ErrInvalidInput }

// InvalidItemError señala el primer ítem ofensivo de una venta y el campo faltante o inválido.
type InvalidItemError struct {
	Index int    // posición del ítem en la lista original
	Field string // "product", "quantity" o "price"
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("Datos de producto incompletos (ítem %d, campo %s)", e.Index, e.Field)
}

func (e *InvalidItemError) Unwrap() error { return ErrInvalidInput }

// ProductNotFoundError indica que un producto referenciado en la venta no existe.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Producto con ID %s no encontrado", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error { return ErrNotFound }

// InsufficientStockError indica que la cantidad solicitada supera el stock disponible.
// Lleva el detalle necesario para que el cliente corrija la solicitud.
type InsufficientStockError struct {
	ProductID string
	Name      string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stock insuficiente para %s. Disponible: %d, Solicitado: %d",
		e.Name, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
