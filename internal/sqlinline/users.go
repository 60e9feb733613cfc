package sqlinline

const QInsertUser = `--sql 3f7c1a92-8e04-4b6d-9c21-5a0e7d4b82f1
insert into users (id, email, password_hash, name, role, phone, hospital_name, hospital_address,
                   blood_type, city, latitude, longitude, last_donation_date, is_available, properties, created_at)
values ($1::uuid, lower($2::text), $3::text, $4::text, $5::text, $6::text, $7::text, $8::text,
        $9::text, $10::text, $11::double precision, $12::double precision, $13::timestamptz, $14::boolean, '{}'::jsonb, now());
`

const userColumns = `id, email, password_hash, name, role, phone, hospital_name, hospital_address,
       blood_type, city, latitude, longitude, last_donation_date, is_available, created_at`

const QSelectUserByID = `--sql 7b2d90c4-13fa-4e88-b5d6-0c9a64e1f237
select ` + userColumns + `
from users
where id = $1::uuid
limit 1;
`

const QSelectUserByEmail = `--sql a19e5fd3-62bb-4c07-8841-9d3f2c7e6054
select ` + userColumns + `
from users
where email = lower($1::text)
limit 1;
`

const QMatchDonors = `--sql c84f2b17-9da6-4f30-a2c5-7e1b08d69423
select ` + userColumns + `
from users
where role = 'donor'
  and blood_type = $1::text
  and is_available
  and (last_donation_date is null or last_donation_date < $2::timestamptz)
order by created_at
limit $3::int;
`

const QMarkDonorDonated = `--sql 5e61a8f0-24c9-41db-97e3-b36d50c2a718
update users
set is_available = false,
    last_donation_date = $2::timestamptz
where id = $1::uuid;
`
