package sqlinline

const QHospitalDashboard = `--sql 2e9b71a4-c50d-4683-bf29-a14d07e6c835
select
  (select count(*) from blood_alerts where hospital_id = $1::uuid)                       as total_alerts,
  (select count(*) from blood_alerts where hospital_id = $1::uuid and status = 'active') as active_alerts,
  count(*) filter (where r.response = 'available')                                       as available_responses,
  count(*) filter (where r.response = 'not_available')                                   as not_available_responses
from donor_responses r
join blood_alerts a on a.id = r.alert_id
where a.hospital_id = $1::uuid;
`

const QDonorDashboard = `--sql 73f0c8d2-1e6a-49b5-8c07-f52a94b1e680
select
  (select count(*) from donor_responses where donor_id = $1::uuid)                            as total_responses,
  (select count(*) from donor_responses where donor_id = $1::uuid and response = 'available') as available_responses,
  (select count(*) from blood_alerts where blood_type = $2::text and status = 'active')       as active_alerts;
`
