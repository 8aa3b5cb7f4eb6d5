package sessions

import "context"

// Repository es el puerto de almacenamiento de sesiones. Las
// implementaciones devuelven ErrNotFound cuando el id no existe; todo
// otro error se propaga sin traducir.
type Repository interface {
	Create(ctx context.Context, s Session) error
	Update(ctx context.Context, s Session) error
	GetByID(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}
