package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/mascotas-api/internal/application/dto"
	"github.com/jhoicas/mascotas-api/internal/application/ports"
	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
	"github.com/jhoicas/mascotas-api/pkg/textnorm"
	"github.com/jhoicas/mascotas-api/pkg/validate"
)

// ErrReceiptUnavailable no hay generador de comprobantes configurado.
var ErrReceiptUnavailable = errors.New("generador de comprobantes no configurado")

// OrderUseCase ciclo de vida de pedidos: PENDIENTE al crear, cualquier estado
// alcanzable con SetStatus y Cancel fuerza CANCELADO.
type OrderUseCase struct {
	repo     repository.OrderRepository
	userRepo repository.UserRepository
	receipts ports.ReceiptGenerator
}

// NewOrderUseCase construye el caso de uso. receipts puede ser nil (sin comprobantes).
func NewOrderUseCase(repo repository.OrderRepository, userRepo repository.UserRepository, receipts ports.ReceiptGenerator) *OrderUseCase {
	return &OrderUseCase{repo: repo, userRepo: userRepo, receipts: receipts}
}

func (uc *OrderUseCase) List(ctx context.Context) ([]dto.OrderResponse, error) {
	return uc.list(ctx, repository.OrderFilter{})
}

// GetByID obtiene un pedido por ID. Devuelve (nil, nil) si no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// ListByUser pedidos del usuario; un ID inexistente devuelve lista vacía.
func (uc *OrderUseCase) ListByUser(ctx context.Context, userID string) ([]dto.OrderResponse, error) {
	if !validID(userID) {
		return []dto.OrderResponse{}, nil
	}
	return uc.list(ctx, repository.OrderFilter{UserID: userID})
}

// ListByStatus pedidos en el estado indicado. Estado desconocido → Invalid.
func (uc *OrderUseCase) ListByStatus(ctx context.Context, status string) ([]dto.OrderResponse, error) {
	st, err := entity.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}
	return uc.list(ctx, repository.OrderFilter{Status: st})
}

// ListByDateRange pedidos con fecha en [from, to], ambos extremos incluidos.
func (uc *OrderUseCase) ListByDateRange(ctx context.Context, from, to time.Time) ([]dto.OrderResponse, error) {
	if from.After(to) {
		return nil, domain.Invalid("la fecha de inicio es posterior a la fecha de fin")
	}
	return uc.list(ctx, repository.OrderFilter{From: &from, To: &to})
}

// Create registra un pedido PENDIENTE para un usuario existente y activo.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, in.UsuarioID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Invalid("el usuario %s no existe", in.UsuarioID)
	}
	if !user.Active {
		return nil, domain.Invalid("el usuario %s está inactivo", in.UsuarioID)
	}
	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Status:    entity.OrderPending,
		Notes:     textnorm.Clean(in.Observaciones),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// SetStatus asigna el estado sin restricciones de transición.
func (uc *OrderUseCase) SetStatus(ctx context.Context, id, status string) (*dto.OrderResponse, error) {
	st, err := entity.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}
	return uc.setStatus(ctx, id, st)
}

// Cancel fuerza CANCELADO sin importar el estado previo.
func (uc *OrderUseCase) Cancel(ctx context.Context, id string) (*dto.OrderResponse, error) {
	return uc.setStatus(ctx, id, entity.OrderCancelled)
}

// CountByStatus cantidad de pedidos en el estado indicado.
func (uc *OrderUseCase) CountByStatus(ctx context.Context, status string) (int64, error) {
	st, err := entity.ParseOrderStatus(status)
	if err != nil {
		return 0, err
	}
	return uc.repo.CountByStatus(ctx, st)
}

// Receipt genera el comprobante del pedido.
func (uc *OrderUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	if uc.receipts == nil {
		return nil, ErrReceiptUnavailable
	}
	order, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	customer, err := uc.userRepo.GetByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NotFound("usuario %s del pedido no encontrado", order.UserID)
	}
	return uc.receipts.GenerateOrderReceipt(ctx, order, customer)
}

func (uc *OrderUseCase) setStatus(ctx context.Context, id string, st entity.OrderStatus) (*dto.OrderResponse, error) {
	order, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Status = st
	order.UpdatedAt = time.Now()
	if err := uc.repo.UpdateStatus(ctx, order.ID, st, order.UpdatedAt); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func (uc *OrderUseCase) list(ctx context.Context, f repository.OrderFilter) ([]dto.OrderResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

func (uc *OrderUseCase) mustGet(ctx context.Context, id string) (*entity.Order, error) {
	if !validID(id) {
		return nil, domain.NotFound("pedido %s no encontrado", id)
	}
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NotFound("pedido %s no encontrado", id)
	}
	return order, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:            o.ID,
		UsuarioID:     o.UserID,
		FechaPedido:   o.CreatedAt,
		Estado:        string(o.Status),
		Observaciones: o.Notes,
	}
}
