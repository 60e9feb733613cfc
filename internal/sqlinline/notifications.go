package sqlinline

const QInsertNotification = `--sql d72b64f8-0a3c-48e1-bc97-385e19d0c6a4
insert into email_notifications (id, alert_id, to_email, to_name, subject, body, status, properties, sent_at)
values ($1::uuid, $2::uuid, lower($3::text), $4::text, $5::text, $6::text, $7::text,
        case when $8::double precision is null then '{}'::jsonb
             else jsonb_build_object('distance_km', $8::double precision) end,
        $9::timestamptz);
`

const notificationColumns = `id, alert_id, to_email, to_name, subject, body, status,
       (properties->>'distance_km')::double precision as distance_km, sent_at`

const QListNotificationsByEmail = `--sql 60c3a9e5-47fd-4b02-8361-d90f25c7b4ea
select ` + notificationColumns + `
from email_notifications
where to_email = lower($1::text)
order by sent_at desc
limit $2::int;
`

const QListNotificationsRecent = `--sql f18d52c6-39ab-4075-ae48-62b0c4971d3f
select ` + notificationColumns + `
from email_notifications
order by sent_at desc
limit $1::int;
`
