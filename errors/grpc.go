package errors

import (
	"maps"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const violationReasonMetadataPrefix = "_errors.violation_reason."

// ToGRPC converts the response into a status error carrying ErrorInfo and,
// for InvalidArgument, BadRequest details.
func (e ErrorResponse) ToGRPC() error {
	st := status.New(e.Code, e.Message)

	metadata := maps.Clone(e.Details)
	for _, v := range e.Violations {
		if v.Field == "" || v.Reason == "" {
			continue
		}
		if metadata == nil {
			metadata = map[string]string{}
		}
		metadata[violationReasonMetadataPrefix+v.Field] = v.Reason
	}

	if e.Reason != "" || len(metadata) > 0 || e.Domain != "" {
		ei := &errdetails.ErrorInfo{
			Reason:   string(e.Reason),
			Domain:   e.Domain,
			Metadata: metadata,
		}
		if st2, err := st.WithDetails(ei); err == nil {
			st = st2
		}
	}

	if len(e.Violations) > 0 && e.Code == codes.InvalidArgument {
		br := &errdetails.BadRequest{
			FieldViolations: make([]*errdetails.BadRequest_FieldViolation, 0, len(e.Violations)),
		}
		for _, v := range e.Violations {
			desc := v.Description
			if desc == "" {
				desc = v.Reason
			}
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Field,
				Description: desc,
			})
		}
		if st2, err := st.WithDetails(br); err == nil {
			st = st2
		}
	}

	return st.Err()
}

// FromGRPC is the inverse of ToGRPC. Non-status errors become Unknown.
func FromGRPC(err error) ErrorResponse {
	st, ok := status.FromError(err)
	if !ok {
		return Unknown()
	}
	out := New(st.Message(), st.Code(), nil)
	violationReasons := map[string]string{}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok {
			continue
		}
		out.Reason = Reason(info.GetReason())
		out.Domain = info.GetDomain()
		for k, v := range info.GetMetadata() {
			if field, found := strings.CutPrefix(k, violationReasonMetadataPrefix); found {
				if field != "" {
					violationReasons[field] = v
				}
				continue
			}
			out = out.WithDetail(k, v)
		}
	}
	for _, d := range st.Details() {
		br, ok := d.(*errdetails.BadRequest)
		if !ok || len(br.GetFieldViolations()) == 0 {
			continue
		}
		vs := make([]FieldViolation, 0, len(br.GetFieldViolations()))
		for _, fv := range br.GetFieldViolations() {
			vs = append(vs, FieldViolation{
				Field:       fv.GetField(),
				Reason:      violationReasons[fv.GetField()],
				Description: fv.GetDescription(),
			})
		}
		out.Violations = vs
	}
	return out
}
