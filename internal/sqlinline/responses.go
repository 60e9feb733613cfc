package sqlinline

const QInsertResponse = `--sql 86d1f4a7-30eb-45c2-9b86-e52c09d7a341
insert into donor_responses (id, alert_id, donor_id, donor_name, donor_email, donor_phone,
                             response, message, properties, responded_at)
values ($1::uuid, $2::uuid, $3::uuid, $4::text, $5::text, $6::text,
        $7::text, $8::text, '{}'::jsonb, $9::timestamptz);
`

const QResponseExists = `--sql 4a2e97c0-d851-463f-a7b4-61f08e3c52d9
select exists (
    select 1
    from donor_responses
    where alert_id = $1::uuid
      and donor_id = $2::uuid
);
`

const QListResponsesByAlert = `--sql b35c80e1-6f49-4da7-921c-07a4d6e8f562
select id, alert_id, donor_id, donor_name, donor_email, donor_phone, response, message, responded_at
from donor_responses
where alert_id = $1::uuid
order by responded_at desc
limit $2::int;
`
