package catalog

import "fmt"

// ValidationError — нарушение доменного правила; операция не отправлялась
// коллаборатору либо была им отклонена как некорректная.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// SyncError — операция ушла коллаборатору, но не была подтверждена.
// Локальное состояние к этому моменту уже откатано к снимку.
type SyncError struct {
	Op  string
	Err error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("синхронизация %s не выполнена: %v", e.Op, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

// NotFoundError — запрошенная сущность отсутствует у коллаборатора.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q не найден", e.Resource, e.Key)
}
