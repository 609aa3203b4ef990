package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
	"github.com/CurtBryan/party-lab-sub000/pkg/dbmetrics"
	"github.com/CurtBryan/party-lab-sub000/pkg/psqlbuilder"
)

// bookingColumns полный набор колонок таблицы bookings
var bookingColumns = []string{
	"id",
	"product",
	"package",
	"event_date",
	"start_time",
	"end_time",
	"status",
	"customer_name",
	"customer_email",
	"customer_phone",
	"event_address",
	"has_generator",
	"has_tables_chairs",
	"has_cotton_candy",
	"has_led_lighting",
	"surface_type",
	"setup_location",
	"power_outlet_distance",
	"gate_width",
	"pets_on_premises",
	"subtotal",
	"deposit",
	"total",
	"payment_ref",
	"payment_status",
	"notes",
	"reminder_sent_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateIdempotent создает бронирование, ключом уникальности служит
// payment_ref. Повторный вызов с тем же payment_ref не создает вторую
// строку: возвращается уже существующее бронирование и created=false.
//
// Вызывается внутри сериализуемой транзакции коммита (транзакция
// пробрасывается через context), чтобы проверка доступности слота и
// вставка строки были атомарны.
func (r *Repository) CreateIdempotent(ctx context.Context, booking *domain.Booking) (*domain.Booking, bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"product",
			"package",
			"event_date",
			"start_time",
			"end_time",
			"status",
			"customer_name",
			"customer_email",
			"customer_phone",
			"event_address",
			"has_generator",
			"has_tables_chairs",
			"has_cotton_candy",
			"has_led_lighting",
			"surface_type",
			"setup_location",
			"power_outlet_distance",
			"gate_width",
			"pets_on_premises",
			"subtotal",
			"deposit",
			"total",
			"payment_ref",
			"payment_status",
			"notes",
		).
		Values(
			booking.Product,
			booking.Package,
			booking.EventDate,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.EventAddress,
			booking.HasGenerator,
			booking.HasTablesChairs,
			booking.HasCottonCandy,
			booking.HasLEDLighting,
			booking.SurfaceType,
			booking.SetupLocation,
			booking.PowerOutletDistance,
			booking.GateWidth,
			booking.PetsOnPremises,
			booking.Subtotal,
			booking.Deposit,
			booking.Total,
			booking.PaymentRef,
			booking.PaymentStatus,
			booking.Notes,
		).
		Suffix("ON CONFLICT (payment_ref) DO NOTHING RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, false, fmt.Errorf("%w: CreateIdempotent - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		// Конфликт по payment_ref: строка уже существует, возвращаем её
		existing, getErr := r.GetByPaymentRef(ctx, booking.PaymentRef)
		if getErr != nil {
			return nil, false, fmt.Errorf("%w: CreateIdempotent - fetch existing by payment_ref: %v", ErrExecQuery, getErr)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: CreateIdempotent - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, true, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...))
}

// GetByPaymentRef получает бронирование по платежной ссылке
func (r *Repository) GetByPaymentRef(ctx context.Context, paymentRef string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"payment_ref": paymentRef}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPaymentRef - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...))
}

// GetWithFilter получает бронирования с фильтрацией по продукту, дате и статусу.
// По умолчанию возвращаются только занимающие слот бронирования
// (pending, confirmed, blocked); отмененные включаются флагом IncludeInactive.
//
// Внутри транзакции при фильтре по конкретной дате добавляется FOR UPDATE -
// это блокировка для проверки конфликтов при коммите бронирования.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.Product != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"product": *filter.Product})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"event_date": *filter.Date})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("event_date DESC, start_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetDueForReminder выбирает бронирования, которым положено напоминание:
// дата мероприятия равна eventDate, статус confirmed, депозит оплачен,
// напоминание еще не отправлялось
func (r *Repository) GetDueForReminder(ctx context.Context, eventDate time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"event_date":     eventDate,
			"status":         domain.StatusConfirmed,
			"payment_status": domain.PaymentPaid,
		}).
		Where("reminder_sent_at IS NULL").
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDueForReminder - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDueForReminder - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// MarkReminderSent устанавливает отметку об отправке напоминания ровно
// один раз: условие reminder_sent_at IS NULL защищает от параллельных
// запусков рассылки
func (r *Repository) MarkReminderSent(ctx context.Context, id int64, sentAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("reminder_sent_at", sentAt).
		Set("updated_at", sentAt).
		Where(squirrel.Eq{"id": id}).
		Where("reminder_sent_at IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdatePaymentStatus обновляет статус платежа
func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel переводит бронирование в статус cancelled с указанием причины.
// Слот при этом освобождается для проверок конфликтов.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("notes", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking сканирует одну строку в бронирование
func (r *Repository) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt, reminderSentAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Product,
		&booking.Package,
		&booking.EventDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.EventAddress,
		&booking.HasGenerator,
		&booking.HasTablesChairs,
		&booking.HasCottonCandy,
		&booking.HasLEDLighting,
		&booking.SurfaceType,
		&booking.SetupLocation,
		&booking.PowerOutletDistance,
		&booking.GateWidth,
		&booking.PetsOnPremises,
		&booking.Subtotal,
		&booking.Deposit,
		&booking.Total,
		&booking.PaymentRef,
		&booking.PaymentStatus,
		&booking.Notes,
		&reminderSentAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanBooking - scan booking: %v", ErrScanRow, err)
	}

	if reminderSentAt.Valid {
		booking.ReminderSentAt = &reminderSentAt.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt, reminderSentAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.Product,
			&booking.Package,
			&booking.EventDate,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.CustomerName,
			&booking.CustomerEmail,
			&booking.CustomerPhone,
			&booking.EventAddress,
			&booking.HasGenerator,
			&booking.HasTablesChairs,
			&booking.HasCottonCandy,
			&booking.HasLEDLighting,
			&booking.SurfaceType,
			&booking.SetupLocation,
			&booking.PowerOutletDistance,
			&booking.GateWidth,
			&booking.PetsOnPremises,
			&booking.Subtotal,
			&booking.Deposit,
			&booking.Total,
			&booking.PaymentRef,
			&booking.PaymentStatus,
			&booking.Notes,
			&reminderSentAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		if reminderSentAt.Valid {
			booking.ReminderSentAt = &reminderSentAt.Time
		}
		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
