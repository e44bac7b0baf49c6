package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/fsdevblog/anticrisis/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const discountColumns = `id, created_at, issuer_id, recipient_id, percentage, redeem_limit, redeem_used`

const discountViewSelect = `SELECT d.id, d.created_at, d.issuer_id, d.recipient_id, d.percentage, d.redeem_limit,
	d.redeem_used, iu.username, ip.business_name, ru.username, rp.business_name, rp.avatar_url
FROM discounts d
	JOIN users iu ON iu.id = d.issuer_id
	JOIN profiles ip ON ip.user_id = d.issuer_id
	JOIN users ru ON ru.id = d.recipient_id
	JOIN profiles rp ON rp.user_id = d.recipient_id`

type DiscountRepository struct {
	conn uow.DBTX
}

func NewDiscountRepository(conn uow.DBTX) *DiscountRepository {
	return &DiscountRepository{conn: conn}
}

// Create записывает скидку с нулевым использованием. Аргументы проверяются до обращения к базе, ограничения
// таблицы дублируют эти проверки (domain.ErrInvalidArgument). Несуществующая сторона - domain.ErrRecordNotFound.
func (d *DiscountRepository) Create(ctx context.Context, args repoargs.DiscountCreate) (*domain.Discount, error) {
	if err := args.Validate(); err != nil {
		return nil, fmt.Errorf("[repository/creating discount] %w", err)
	}
	discount, err := scanDiscount(d.conn.QueryRow(ctx,
		`INSERT INTO discounts (issuer_id, recipient_id, percentage, redeem_limit) VALUES ($1, $2, $3, $4)
		RETURNING `+discountColumns,
		args.IssuerID, args.RecipientID, args.Percentage, args.RedeemLimit,
	))
	if err != nil {
		return nil, convertErr(err, "creating discount %d -> %d", args.IssuerID, args.RecipientID)
	}
	return discount, nil
}

func (d *DiscountRepository) GetByID(ctx context.Context, id int64) (*domain.DiscountView, error) {
	view, err := scanDiscountView(d.conn.QueryRow(ctx, discountViewSelect+` WHERE d.id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "getting discount %d", id)
	}
	return view, nil
}

// List возвращает скидки, выданные (DiscountsIssued) или полученные (DiscountsReceived) юзером, от новых к старым.
func (d *DiscountRepository) List(
	ctx context.Context,
	filter repoargs.DiscountFilter,
	page repoargs.Pagination,
) ([]domain.DiscountView, error) {
	var sideColumn string
	switch filter.Direction {
	case domain.DiscountsIssued:
		sideColumn = "d.issuer_id"
	case domain.DiscountsReceived:
		sideColumn = "d.recipient_id"
	default:
		return nil, fmt.Errorf("[repository/listing discounts] %w",
			domain.NewValidationError("type", "must be issued or received"))
	}
	limit, offset, pageErr := limitOffset(page)
	if pageErr != nil {
		return nil, convertErr(pageErr, "converting pagination")
	}

	rows, err := d.conn.Query(ctx,
		discountViewSelect+` WHERE `+sideColumn+` = $1
			AND ($2 = '' OR lower(ip.business_name) LIKE $3 OR lower(rp.business_name) LIKE $3)
		ORDER BY d.created_at DESC, d.id DESC
		LIMIT $4 OFFSET $5`,
		filter.UserID, filter.Query, containsPattern(filter.Query), limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "listing %s discounts of user %d", filter.Direction, filter.UserID)
	}
	views, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DiscountView, error) {
		view, scanErr := scanDiscountView(row)
		if scanErr != nil {
			return domain.DiscountView{}, scanErr
		}
		return *view, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing %s discounts of user %d", filter.Direction, filter.UserID)
	}
	return views, nil
}

// IncrementUsed увеличивает redeem_used на amount одной командой сравнения и обновления. amount должен быть
// положительным (domain.ErrInvalidArgument), redeem_used никогда не уменьшается. Если лимит
// будет превышен, строка не меняется и возвращается domain.ErrLimitExceeded. Конкурентные погашения одной скидки
// сериализуются блокировкой строки, ожидающая транзакция перепроверяет условие по зафиксированному значению.
func (d *DiscountRepository) IncrementUsed(
	ctx context.Context,
	id int64,
	amount decimal.Decimal,
) (*domain.Discount, error) {
	if err := repoargs.ValidateAmount("amount", amount, false); err != nil {
		return nil, fmt.Errorf("[repository/incrementing used amount of discount %d] %w", id, err)
	}
	discount, err := scanDiscount(d.conn.QueryRow(ctx,
		`UPDATE discounts SET redeem_used = redeem_used + $2
		WHERE id = $1 AND $2 > 0 AND redeem_used + $2 <= redeem_limit
		RETURNING `+discountColumns,
		id, amount,
	))
	if err == nil {
		return discount, nil
	}
	if !isNoRows(err) {
		return nil, convertErr(err, "incrementing used amount of discount %d", id)
	}

	var exists bool
	if existsErr := d.conn.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM discounts WHERE id = $1)`, id,
	).Scan(&exists); existsErr != nil {
		return nil, convertErr(existsErr, "checking discount %d", id)
	}
	if !exists {
		return nil, convertErr(pgx.ErrNoRows, "incrementing used amount of discount %d", id)
	}
	return nil, fmt.Errorf("[repository/incrementing used amount of discount %d] %w", id, domain.ErrLimitExceeded)
}

// CountUsedByIssuer количество выданных юзером скидок, которые хотя бы раз использовались.
func (d *DiscountRepository) CountUsedByIssuer(ctx context.Context, issuerID int64) (int64, error) {
	var count int64
	if err := d.conn.QueryRow(ctx,
		`SELECT count(*) FROM discounts WHERE issuer_id = $1 AND redeem_used > 0`, issuerID,
	).Scan(&count); err != nil {
		return 0, convertErr(err, "counting used discounts of issuer %d", issuerID)
	}
	return count, nil
}

func (d *DiscountRepository) CountReceivedByRecipient(ctx context.Context, recipientID int64) (int64, error) {
	var count int64
	if err := d.conn.QueryRow(ctx,
		`SELECT count(*) FROM discounts WHERE recipient_id = $1`, recipientID,
	).Scan(&count); err != nil {
		return 0, convertErr(err, "counting received discounts of recipient %d", recipientID)
	}
	return count, nil
}

// AveragePercentageByIssuer средний процент выданных юзером скидок, 0 если скидок нет.
func (d *DiscountRepository) AveragePercentageByIssuer(ctx context.Context, issuerID int64) (decimal.Decimal, error) {
	var avg decimal.Decimal
	if err := d.conn.QueryRow(ctx,
		`SELECT COALESCE(round(avg(percentage), 2), 0)::text FROM discounts WHERE issuer_id = $1`, issuerID,
	).Scan(&avg); err != nil {
		return decimal.Zero, convertErr(err, "averaging percentage of issuer %d", issuerID)
	}
	return avg, nil
}

func scanDiscount(row rowScanner) (*domain.Discount, error) {
	var discount domain.Discount
	if err := row.Scan(
		&discount.ID,
		&discount.CreatedAt,
		&discount.IssuerID,
		&discount.RecipientID,
		&discount.Percentage,
		&discount.RedeemLimit,
		&discount.RedeemUsed,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &discount, nil
}

func scanDiscountView(row rowScanner) (*domain.DiscountView, error) {
	var view domain.DiscountView
	if err := row.Scan(
		&view.ID,
		&view.CreatedAt,
		&view.IssuerID,
		&view.RecipientID,
		&view.Percentage,
		&view.RedeemLimit,
		&view.RedeemUsed,
		&view.IssuerUsername,
		&view.IssuerBusinessName,
		&view.RecipientUsername,
		&view.RecipientBusinessName,
		&view.RecipientAvatarURL,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &view, nil
}
