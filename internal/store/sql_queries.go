package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/vote-monitor/models"
)

const (
	tableObservers = "observers"
	tableNgos      = "ngos"
	tableNgoAdmins = "ngo_admins"
)

var (
	observerColumns = []string{"id", "phone", "pin", "name", "id_ngo", "is_active", "mobile_device_id", "device_register_date"}
	ngoColumns      = []string{"id", "name", "short_name", "organizer", "is_active"}
	ngoAdminColumns = []string{"id", "id_ngo", "account", "password"}
)

func buildFindObserverByCredentialsQuery(b sq.StatementBuilderType, phone, pinHash string) (string, []any, error) {
	query, args, err := b.Select(observerColumns...).
		From(tableObservers).
		Where(sq.Eq{"phone": phone, "pin": pinHash}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindObserverDeviceQuery(b sq.StatementBuilderType, observerID int64) (string, []any, error) {
	query, args, err := b.Select("mobile_device_id").
		From(tableObservers).
		Where(sq.Eq{"id": observerID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildRegisterDeviceQuery only matches observers without a bound device.
func buildRegisterDeviceQuery(b sq.StatementBuilderType, observerID int64, deviceID string, registeredAt time.Time) (string, []any, error) {
	query, args, err := b.Update(tableObservers).
		Set("mobile_device_id", deviceID).
		Set("device_register_date", registeredAt).
		Where(sq.Eq{"id": observerID, "mobile_device_id": nil}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateObserverQuery(b sq.StatementBuilderType, o models.Observer) (string, []any, error) {
	var deviceID any
	if o.MobileDeviceID != "" {
		deviceID = o.MobileDeviceID
	}

	query, args, err := b.Insert(tableObservers).
		Columns("phone", "pin", "name", "id_ngo", "is_active", "mobile_device_id", "device_register_date").
		Values(o.Phone, o.Pin, o.Name, o.NgoID, o.IsActive, deviceID, o.DeviceRegisterDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindNgoByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Select(ngoColumns...).
		From(tableNgos).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateNgoQuery(b sq.StatementBuilderType, ngo models.Ngo) (string, []any, error) {
	query, args, err := b.Insert(tableNgos).
		Columns("name", "short_name", "organizer", "is_active").
		Values(ngo.Name, ngo.ShortName, ngo.Organizer, ngo.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindNgoAdminByCredentialsQuery(b sq.StatementBuilderType, account, passwordHash string) (string, []any, error) {
	query, args, err := b.Select(ngoAdminColumns...).
		From(tableNgoAdmins).
		Where(sq.Eq{"account": account, "password": passwordHash}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateNgoAdminQuery(b sq.StatementBuilderType, admin models.NgoAdmin) (string, []any, error) {
	query, args, err := b.Insert(tableNgoAdmins).
		Columns("id_ngo", "account", "password").
		Values(admin.NgoID, admin.Account, admin.Password).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
