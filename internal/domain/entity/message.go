package entity

import "time"

type MessageType string

const (
	MessageText         MessageType = "text"
	MessageImage        MessageType = "image"
	MessageVideo        MessageType = "video"
	MessageFile         MessageType = "file"
	MessageProduct      MessageType = "product"
	MessageQuoteRequest MessageType = "quote_request"
)

func (t MessageType) IsValid() bool {
	switch t {
	case MessageText, MessageImage, MessageVideo, MessageFile, MessageProduct, MessageQuoteRequest:
		return true
	}
	return false
}

// ProductRef is a snapshot of a referenced item, attached to messages about
// a specific product and mirrored on the conversation for deep-linking.
type ProductRef struct {
	ProductID       string  `json:"product_id" firestore:"productId"`
	ProductName     string  `json:"product_name" firestore:"productName"`
	ProductImage    string  `json:"product_image,omitempty" firestore:"productImage,omitempty"`
	ProductPrice    float64 `json:"product_price,omitempty" firestore:"productPrice,omitempty"`
	ProductCurrency string  `json:"product_currency,omitempty" firestore:"productCurrency,omitempty"`
}

// Message is an append-only row in a conversation. After creation the only
// permitted mutation is flipping IsRead, done by the read tracker.
type Message struct {
	ID             string      `json:"id" firestore:"id"`
	ConversationID string      `json:"conversation_id" firestore:"conversationId"`
	SenderID       string      `json:"sender_id" firestore:"senderId"`
	ReceiverID     string      `json:"receiver_id" firestore:"receiverId"`
	Content        string      `json:"content" firestore:"content"`
	Type           MessageType `json:"type" firestore:"type"`
	FileURL        string      `json:"file_url,omitempty" firestore:"fileUrl,omitempty"`
	FileName       string      `json:"file_name,omitempty" firestore:"fileName,omitempty"`
	FileSize       int64       `json:"file_size,omitempty" firestore:"fileSize,omitempty"`
	ThumbnailURL   string      `json:"thumbnail_url,omitempty" firestore:"thumbnailUrl,omitempty"`
	ProductRef     *ProductRef `json:"product_reference,omitempty" firestore:"productReference,omitempty"`
	IsRead         bool        `json:"is_read" firestore:"isRead"`
	CreatedAt      time.Time   `json:"created_at" firestore:"createdAt"`
	UpdatedAt      time.Time   `json:"updated_at" firestore:"updatedAt"`
}

// PreviewContent derives the inbox preview for this message. Text shows the
// raw content; every other type is synthesized so previews stay meaningful.
func (m *Message) PreviewContent() string {
	switch m.Type {
	case MessageProduct:
		if m.ProductRef != nil {
			return "📦 " + m.ProductRef.ProductName
		}
		return "📦 Product"
	case MessageQuoteRequest:
		if m.ProductRef != nil {
			return "💰 Quote request for " + m.ProductRef.ProductName
		}
		return "💰 Quote request"
	case MessageImage:
		return "📷 Image"
	case MessageVideo:
		return "🎥 Video"
	case MessageFile:
		return "📎 File"
	default:
		return m.Content
	}
}
