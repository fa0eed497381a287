package usecase

import (
	"context"
	"fmt"
	"log"
)

// Saga encadeia escritas remotas em duas fases: aplica na ordem e, se
// alguma falhar, desfaz as anteriores com as compensações registradas.
// É o que substitui o "aplica local e torce" da UI otimista: ou todas as
// escritas valem, ou nenhuma fica visível.
type Saga struct {
	operations    []Operation
	compensations []Compensation
}

type Operation struct {
	Name string
	Fn   func(context.Context) error
}

type Compensation struct {
	Name string
	Fn   func(context.Context) error
}

func NewSaga() *Saga {
	return &Saga{
		operations:    []Operation{},
		compensations: []Compensation{},
	}
}

func (s *Saga) AddOperation(name string, fn func(context.Context) error) {
	s.operations = append(s.operations, Operation{name, fn})
}

// AddCompensation registra o desfazer da operação de mesmo índice.
func (s *Saga) AddCompensation(name string, fn func(context.Context) error) {
	s.compensations = append(s.compensations, Compensation{name, fn})
}

func (s *Saga) Execute(ctx context.Context) error {
	for i, op := range s.operations {
		if err := op.Fn(ctx); err != nil {
			s.rollback(ctx, i)
			return fmt.Errorf("operation '%s' failed: %w (rolled back %d operations)", op.Name, err, i)
		}
	}
	return nil
}

func (s *Saga) rollback(ctx context.Context, failedAtIndex int) {
	for i := failedAtIndex - 1; i >= 0; i-- {
		if i < len(s.compensations) {
			comp := s.compensations[i]
			if err := comp.Fn(ctx); err != nil {
				log.Printf("⚠️ WARNING: compensation '%s' failed: %v (inconsistency risk!)", comp.Name, err)
			}
		}
	}
}
