package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/fsdevblog/anticrisis/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const profileColumns = `p.user_id, u.username, p.created_at, p.updated_at, p.business_name, p.about, p.phone,
	p.email, p.website, p.address, p.location_coordinates, p.avatar_url, p.banner_url,
	p.followers_count, p.followings_count, p.discounts_received_count, p.discounts_used_count`

const profileSelect = `SELECT ` + profileColumns + ` FROM profiles p JOIN users u ON u.id = p.user_id`

// recountQuery сравнивает сохраненные счетчики с фактическими значениями из исходных таблиц.
// Порядок колонок совпадает с domain.CounterFields.
const recountQuery = `SELECT p.user_id,
	p.followers_count, (SELECT count(*) FROM follows f WHERE f.following_id = p.user_id),
	p.followings_count, (SELECT count(*) FROM follows f WHERE f.follower_id = p.user_id),
	p.discounts_received_count, (SELECT count(*) FROM discounts d WHERE d.recipient_id = p.user_id),
	p.discounts_used_count, (SELECT count(*) FROM discounts d WHERE d.issuer_id = p.user_id AND d.redeem_used > 0)
FROM profiles p
WHERE p.user_id = ANY($1)
ORDER BY p.user_id`

type ProfileRepository struct {
	conn uow.DBTX
}

func NewProfileRepository(conn uow.DBTX) *ProfileRepository {
	return &ProfileRepository{conn: conn}
}

// Create создает пустой профиль юзера с нулевыми счетчиками.
func (p *ProfileRepository) Create(ctx context.Context, args repoargs.ProfileCreate) (*domain.Profile, error) {
	if _, err := p.conn.Exec(ctx,
		`INSERT INTO profiles (user_id, business_name) VALUES ($1, $2)`,
		args.UserID, args.BusinessName,
	); err != nil {
		return nil, convertErr(err, "creating profile for user %d", args.UserID)
	}
	return p.FindByUserID(ctx, args.UserID)
}

func (p *ProfileRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	profile, err := scanProfile(p.conn.QueryRow(ctx, profileSelect+` WHERE p.user_id = $1`, userID))
	if err != nil {
		return nil, convertErr(err, "finding profile by user id %d", userID)
	}
	return profile, nil
}

func (p *ProfileRepository) FindByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	profile, err := scanProfile(p.conn.QueryRow(ctx, profileSelect+` WHERE u.username = $1`, username))
	if err != nil {
		return nil, convertErr(err, "finding profile by username %s", username)
	}
	return profile, nil
}

// UpdateDetails обновляет только описательные поля профиля. nil поля остаются без изменений.
func (p *ProfileRepository) UpdateDetails(
	ctx context.Context,
	userID int64,
	details repoargs.ProfileDetails,
) (*domain.Profile, error) {
	tag, err := p.conn.Exec(ctx, `UPDATE profiles SET
		business_name = COALESCE($2, business_name),
		about = COALESCE($3, about),
		phone = COALESCE($4, phone),
		email = COALESCE($5, email),
		website = COALESCE($6, website),
		address = COALESCE($7, address),
		location_coordinates = COALESCE($8, location_coordinates),
		avatar_url = COALESCE($9, avatar_url),
		banner_url = COALESCE($10, banner_url),
		updated_at = now()
	WHERE user_id = $1`,
		userID,
		details.BusinessName,
		details.About,
		details.Phone,
		details.Email,
		details.Website,
		details.Address,
		details.LocationCoordinates,
		details.AvatarURL,
		details.BannerURL,
	)
	if err != nil {
		return nil, convertErr(err, "updating profile of user %d", userID)
	}
	if tag.RowsAffected() == 0 {
		return nil, convertErr(pgx.ErrNoRows, "updating profile of user %d", userID)
	}
	return p.FindByUserID(ctx, userID)
}

// Search ищет профили по подстроке в названии бизнеса без учета регистра.
func (p *ProfileRepository) Search(
	ctx context.Context,
	query string,
	page repoargs.Pagination,
) ([]domain.Profile, error) {
	limit, offset, pageErr := limitOffset(page)
	if pageErr != nil {
		return nil, convertErr(pageErr, "converting pagination")
	}
	rows, err := p.conn.Query(ctx,
		profileSelect+` WHERE lower(p.business_name) LIKE $1 ORDER BY p.business_name, p.user_id LIMIT $2 OFFSET $3`,
		containsPattern(query), limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "searching profiles by `%s`", query)
	}
	profiles, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Profile, error) {
		profile, scanErr := scanProfile(row)
		if scanErr != nil {
			return domain.Profile{}, scanErr
		}
		return *profile, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "searching profiles by `%s`", query)
	}
	return profiles, nil
}

// AddToCounter атомарно прибавляет delta к счетчику field. Возвращает domain.ErrRecordNotFound если профиля нет,
// domain.ErrInvalidArgument если счетчик ушел бы в минус.
func (p *ProfileRepository) AddToCounter(
	ctx context.Context,
	userID int64,
	field domain.CounterField,
	delta int64,
) error {
	if !field.Valid() {
		return fmt.Errorf("[repository/adding to counter] %w", domain.NewValidationError("field", string(field)))
	}
	tag, err := p.conn.Exec(ctx,
		fmt.Sprintf(`UPDATE profiles SET %[1]s = %[1]s + $2 WHERE user_id = $1`, field),
		userID, delta,
	)
	if err != nil {
		return convertErr(err, "adding %d to %s of user %d", delta, field, userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "adding %d to %s of user %d", delta, field, userID)
	}
	return nil
}

// LockForUpdate блокирует строки профилей до конца транзакции. Строки блокируются по возрастанию user_id.
// Если хотя бы один профиль не найден, возвращает domain.ErrRecordNotFound.
func (p *ProfileRepository) LockForUpdate(ctx context.Context, userIDs []int64) error {
	rows, err := p.conn.Query(ctx,
		`SELECT user_id FROM profiles WHERE user_id = ANY($1) ORDER BY user_id FOR UPDATE`,
		userIDs,
	)
	if err != nil {
		return convertErr(err, "locking profiles %v", userIDs)
	}
	locked, collectErr := pgx.CollectRows(rows, pgx.RowTo[int64])
	if collectErr != nil {
		return convertErr(collectErr, "locking profiles %v", userIDs)
	}
	if len(locked) != countUnique(userIDs) {
		return convertErr(pgx.ErrNoRows, "locking profiles %v", userIDs)
	}
	return nil
}

// SetCounter записывает пересчитанное значение счетчика.
func (p *ProfileRepository) SetCounter(
	ctx context.Context,
	userID int64,
	field domain.CounterField,
	value int64,
) error {
	if !field.Valid() {
		return fmt.Errorf("[repository/setting counter] %w", domain.NewValidationError("field", string(field)))
	}
	tag, err := p.conn.Exec(ctx, fmt.Sprintf(`UPDATE profiles SET %s = $2 WHERE user_id = $1`, field), userID, value)
	if err != nil {
		return convertErr(err, "setting %s of user %d", field, userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "setting %s of user %d", field, userID)
	}
	return nil
}

// Recount пересчитывает все счетчики указанных профилей по исходным таблицам, сохраняет расхождения
// и возвращает их. Строки профилей должны быть заблокированы вызывающим (LockForUpdate).
func (p *ProfileRepository) Recount(ctx context.Context, userIDs []int64) ([]domain.CounterDrift, error) {
	rows, err := p.conn.Query(ctx, recountQuery, userIDs)
	if err != nil {
		return nil, convertErr(err, "recounting profiles %v", userIDs)
	}
	perUser, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) ([]domain.CounterDrift, error) {
		var userID int64
		var values [8]int64
		if scanErr := row.Scan(
			&userID,
			&values[0], &values[1],
			&values[2], &values[3],
			&values[4], &values[5],
			&values[6], &values[7],
		); scanErr != nil {
			return nil, scanErr //nolint:wrapcheck
		}
		var drifts []domain.CounterDrift
		for i, field := range domain.CounterFields {
			stored, computed := values[i*2], values[i*2+1]
			if stored != computed {
				drifts = append(drifts, domain.CounterDrift{
					UserID:   userID,
					Field:    field,
					Stored:   stored,
					Computed: computed,
				})
			}
		}
		return drifts, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "recounting profiles %v", userIDs)
	}

	var drifts []domain.CounterDrift
	for _, userDrifts := range perUser {
		for _, drift := range userDrifts {
			if setErr := p.SetCounter(ctx, drift.UserID, drift.Field, drift.Computed); setErr != nil {
				return nil, setErr
			}
			drifts = append(drifts, drift)
		}
	}
	return drifts, nil
}

// ListUserIDs возвращает страницу id профилей строго после afterID по возрастанию.
func (p *ProfileRepository) ListUserIDs(ctx context.Context, afterID int64, limit uint) ([]int64, error) {
	safeLimit, limitErr := safeConvertUintToInt64(limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit")
	}
	rows, err := p.conn.Query(ctx,
		`SELECT user_id FROM profiles WHERE user_id > $1 ORDER BY user_id LIMIT $2`,
		afterID, safeLimit,
	)
	if err != nil {
		return nil, convertErr(err, "listing profile ids after %d", afterID)
	}
	ids, collectErr := pgx.CollectRows(rows, pgx.RowTo[int64])
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing profile ids after %d", afterID)
	}
	return ids, nil
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var profile domain.Profile
	if err := row.Scan(
		&profile.UserID,
		&profile.Username,
		&profile.CreatedAt,
		&profile.UpdatedAt,
		&profile.BusinessName,
		&profile.About,
		&profile.Phone,
		&profile.Email,
		&profile.Website,
		&profile.Address,
		&profile.LocationCoordinates,
		&profile.AvatarURL,
		&profile.BannerURL,
		&profile.FollowersCount,
		&profile.FollowingsCount,
		&profile.DiscountsReceivedCount,
		&profile.DiscountsUsedCount,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &profile, nil
}
