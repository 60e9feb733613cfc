package sqlinline

const QInsertAlert = `--sql 9d04c7e2-5ab8-4f16-83d9-1c62e0b74a95
insert into blood_alerts (id, hospital_id, hospital_name, blood_type, units_needed, urgency_level,
                          description, latitude, longitude, radius_km, status, properties, created_at, expires_at)
values ($1::uuid, $2::uuid, $3::text, $4::text, $5::int, $6::text,
        $7::text, $8::double precision, $9::double precision, $10::double precision, $11::text, '{}'::jsonb, $12::timestamptz, $13::timestamptz);
`

const alertColumns = `id, hospital_id, hospital_name, blood_type, units_needed, urgency_level,
       description, latitude, longitude, radius_km, status, created_at, expires_at`

const QSelectAlertByID = `--sql 24b8f1d6-07ce-49a3-b5e2-f90d6a38c174
select ` + alertColumns + `
from blood_alerts
where id = $1::uuid
limit 1;
`

const QListAlertsByHospital = `--sql e67a03b9-4d12-48fc-9a60-28c5b1794de3
select ` + alertColumns + `
from blood_alerts
where hospital_id = $1::uuid
order by created_at desc
limit $2::int;
`

const QListActiveAlertsByBloodType = `--sql 1c593e84-b6d0-427a-8f15-d74a92c0e6b8
select ` + alertColumns + `
from blood_alerts
where blood_type = $1::text
  and status = 'active'
order by created_at desc
limit $2::int;
`
